//go:build unit
// +build unit

package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/crypto-lab/internal/domain/measurements"
	"github.com/MGTheTrain/crypto-lab/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/testutil"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMeasurementRepository is a mock implementation of MeasurementRepository
type MockMeasurementRepository struct {
	mock.Mock
}

// Create mocks MeasurementRepository.Create
func (m *MockMeasurementRepository) Create(ctx context.Context, measurement *measurements.Measurement) error {
	args := m.Called(ctx, measurement)
	return args.Error(0)
}

// List mocks MeasurementRepository.List
func (m *MockMeasurementRepository) List(ctx context.Context, query *measurements.MeasurementQuery) ([]*measurements.Measurement, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*measurements.Measurement), args.Error(1)
}

// TestServices holds the application services wired against a temporary directory
type TestServices struct {
	Dir         string
	Repo        *MockMeasurementRepository
	AESService  *AESFileService
	RSAService  *RSAService
	HashService *HashService

	SubstitutionService *SubstitutionService
}

// SetupTestServices wires every service with real processors, key files under
// t.TempDir() and a mock repository that accepts any measurement.
func SetupTestServices(t *testing.T) *TestServices {
	t.Helper()

	dir := t.TempDir()
	logger := testutil.SetupTestLogger(t)

	repo := &MockMeasurementRepository{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	recorder := NewMeasurementRecorder(repo, logger)

	keys := config.DefaultKeySettings()
	keys.AES.Path = filepath.Join(dir, config.DefaultAESKeyPath)
	keys.RSA.PrivateKeyPath = filepath.Join(dir, config.DefaultPrivateKeyPath)
	keys.RSA.PublicKeyPath = filepath.Join(dir, config.DefaultPublicKeyPath)

	aesProcessor, err := cryptography.NewAESProcessor(logger)
	require.NoError(t, err)
	aesService, err := NewAESFileService(aesProcessor, keys.AES, recorder, logger)
	require.NoError(t, err)

	rsaProcessor, err := cryptography.NewRSAProcessor(logger)
	require.NoError(t, err)
	rsaService, err := NewRSAService(rsaProcessor, keys.RSA, recorder, logger)
	require.NoError(t, err)

	hashService, err := NewHashService(cryptography.NewSHA256Hasher(), recorder, logger)
	require.NoError(t, err)

	substitutionService, err := NewSubstitutionService(cryptography.NewFrequencyAnalyzer(), cryptography.DefaultWordPatternLimit, recorder, logger)
	require.NoError(t, err)

	return &TestServices{
		Dir:         dir,
		Repo:        repo,
		AESService:  aesService,
		RSAService:  rsaService,
		HashService: hashService,

		SubstitutionService: substitutionService,
	}
}

// Path joins name onto the test directory
func (s *TestServices) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

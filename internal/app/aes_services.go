package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/MGTheTrain/crypto-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-lab/internal/domain/measurements"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/logger"
)

// AESFileService encrypts and decrypts whole files under a persisted AES key
type AESFileService struct {
	aesProcessor cryptoalg.AESProcessor
	settings     config.SymmetricKeySettings
	recorder     *MeasurementRecorder
	logger       logger.Logger
}

// NewAESFileService creates a new AESFileService instance
func NewAESFileService(
	aesProcessor cryptoalg.AESProcessor,
	settings config.SymmetricKeySettings,
	recorder *MeasurementRecorder,
	logger logger.Logger,
) (*AESFileService, error) {
	if aesProcessor == nil {
		return nil, errors.New("AES processor cannot be nil")
	}
	return &AESFileService{
		aesProcessor: aesProcessor,
		settings:     settings,
		recorder:     recorder,
		logger:       logger,
	}, nil
}

// KeyPath returns the location of the AES key file
func (s *AESFileService) KeyPath() string {
	return s.settings.Path
}

// GenerateKey creates a fresh key and overwrites the key file with it.
func (s *AESFileService) GenerateKey(_ context.Context) ([]byte, error) {
	key, err := s.aesProcessor.GenerateKey(s.settings.KeySize / 8)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(filepath.Clean(s.settings.Path), key, 0600); err != nil {
		return nil, fmt.Errorf("failed to save AES key: %w", err)
	}

	s.logger.Info("AES key saved to ", s.settings.Path)
	return key, nil
}

// LoadKey reads the key file, generating it first when it does not exist.
// The boolean reports whether a new key was generated.
func (s *AESFileService) LoadKey(ctx context.Context) ([]byte, bool, error) {
	key, err := os.ReadFile(filepath.Clean(s.settings.Path))
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("AES key not found at ", s.settings.Path, ", generating a new one")
		key, err = s.GenerateKey(ctx)
		return key, err == nil, err
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read AES key: %w", err)
	}

	if len(key) != s.settings.KeySize/8 {
		return nil, false, fmt.Errorf("%w: %s holds %d bytes, expected %d",
			cryptoalg.ErrInvalidKeySize, s.settings.Path, len(key), s.settings.KeySize/8)
	}

	return key, false, nil
}

// EncryptFile writes IV ‖ ciphertext of inputPath to outputPath. Only the cipher call is timed.
func (s *AESFileService) EncryptFile(ctx context.Context, key []byte, inputPath, outputPath string) (*measurements.Measurement, error) {
	plainText, err := os.ReadFile(filepath.Clean(inputPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	start := time.Now()
	encryptedData, err := s.aesProcessor.Encrypt(plainText, key)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(filepath.Clean(outputPath), encryptedData, 0600); err != nil {
		return nil, fmt.Errorf("failed to write encrypted file: %w", err)
	}

	m := measurements.NewMeasurement(measurements.ToolAES, measurements.OperationEncrypt, len(plainText), elapsed)
	s.recorder.Record(ctx, m)

	s.logger.Info("Encrypted data saved to ", outputPath)
	return m, nil
}

// DecryptFile decrypts an IV ‖ ciphertext file and returns the plaintext.
func (s *AESFileService) DecryptFile(ctx context.Context, key []byte, inputPath string) ([]byte, *measurements.Measurement, error) {
	encryptedData, err := os.ReadFile(filepath.Clean(inputPath))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read encrypted file: %w", err)
	}

	start := time.Now()
	decryptedData, err := s.aesProcessor.Decrypt(encryptedData, key)
	elapsed := time.Since(start)
	if err != nil {
		return nil, nil, err
	}

	m := measurements.NewMeasurement(measurements.ToolAES, measurements.OperationDecrypt, len(decryptedData), elapsed)
	s.recorder.Record(ctx, m)

	return decryptedData, m, nil
}

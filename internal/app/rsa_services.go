package app

import (
	"context"
	"crypto/rsa"
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

// RSAService runs RSA-OAEP encryption and PKCS#1 v1.5 signing against a persisted PEM key pair
type RSAService struct {
	rsaProcessor cryptoalg.RSAProcessor
	settings     config.AsymmetricKeySettings
	recorder     *MeasurementRecorder
	logger       logger.Logger
}

// NewRSAService creates a new RSAService instance
func NewRSAService(
	rsaProcessor cryptoalg.RSAProcessor,
	settings config.AsymmetricKeySettings,
	recorder *MeasurementRecorder,
	logger logger.Logger,
) (*RSAService, error) {
	if rsaProcessor == nil {
		return nil, errors.New("RSA processor cannot be nil")
	}
	return &RSAService{
		rsaProcessor: rsaProcessor,
		settings:     settings,
		recorder:     recorder,
		logger:       logger,
	}, nil
}

// Settings returns the key pair settings in use
func (s *RSAService) Settings() config.AsymmetricKeySettings {
	return s.settings
}

// GenerateKeys creates and persists a key pair unless both PEM files already exist.
// It reports whether a pair was generated; the measurement covers key generation only
// and is nil when nothing was generated.
func (s *RSAService) GenerateKeys(ctx context.Context) (bool, *measurements.Measurement, error) {
	privExists, err := fileExists(s.settings.PrivateKeyPath)
	if err != nil {
		return false, nil, err
	}
	pubExists, err := fileExists(s.settings.PublicKeyPath)
	if err != nil {
		return false, nil, err
	}
	if privExists && pubExists {
		s.logger.Info("RSA keys already exist")
		return false, nil, nil
	}

	start := time.Now()
	privateKey, publicKey, err := s.rsaProcessor.GenerateKeys(s.settings.KeySize)
	elapsed := time.Since(start)
	if err != nil {
		return false, nil, err
	}

	if err := s.rsaProcessor.SavePrivateKeyToFile(privateKey, s.settings.PrivateKeyPath); err != nil {
		return false, nil, err
	}
	if err := s.rsaProcessor.SavePublicKeyToFile(publicKey, s.settings.PublicKeyPath); err != nil {
		return false, nil, err
	}

	m := measurements.NewMeasurement(measurements.ToolRSA, measurements.OperationGenerateKey, s.settings.KeySize/8, elapsed)
	s.recorder.Record(ctx, m)

	return true, m, nil
}

// LoadKeys reads the private and public key from their PEM files
func (s *RSAService) LoadKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := s.rsaProcessor.ReadPrivateKey(s.settings.PrivateKeyPath)
	if err != nil {
		return nil, nil, err
	}
	publicKey, err := s.rsaProcessor.ReadPublicKey(s.settings.PublicKeyPath)
	if err != nil {
		return nil, nil, err
	}
	return privateKey, publicKey, nil
}

// EncryptFile encrypts inputPath as one OAEP block and writes the raw ciphertext to outputPath.
func (s *RSAService) EncryptFile(ctx context.Context, publicKey *rsa.PublicKey, inputPath, outputPath string) (*measurements.Measurement, error) {
	plainText, err := os.ReadFile(filepath.Clean(inputPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	start := time.Now()
	encryptedData, err := s.rsaProcessor.Encrypt(plainText, publicKey)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(filepath.Clean(outputPath), encryptedData, 0600); err != nil {
		return nil, fmt.Errorf("failed to write encrypted file: %w", err)
	}

	m := measurements.NewMeasurement(measurements.ToolRSA, measurements.OperationEncrypt, len(plainText), elapsed)
	s.recorder.Record(ctx, m)

	s.logger.Info("Encrypted data path ", outputPath)
	return m, nil
}

// DecryptFile decrypts a raw OAEP ciphertext file and returns the plaintext
func (s *RSAService) DecryptFile(ctx context.Context, privateKey *rsa.PrivateKey, inputPath string) ([]byte, *measurements.Measurement, error) {
	encryptedData, err := os.ReadFile(filepath.Clean(inputPath))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read encrypted file: %w", err)
	}

	start := time.Now()
	decryptedData, err := s.rsaProcessor.Decrypt(encryptedData, privateKey)
	elapsed := time.Since(start)
	if err != nil {
		return nil, nil, err
	}

	m := measurements.NewMeasurement(measurements.ToolRSA, measurements.OperationDecrypt, len(decryptedData), elapsed)
	s.recorder.Record(ctx, m)

	return decryptedData, m, nil
}

// SignFile signs the SHA-256 digest of inputPath and writes the raw signature to signaturePath
func (s *RSAService) SignFile(ctx context.Context, privateKey *rsa.PrivateKey, inputPath, signaturePath string) (*measurements.Measurement, error) {
	data, err := os.ReadFile(filepath.Clean(inputPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	start := time.Now()
	signature, err := s.rsaProcessor.Sign(data, privateKey)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(filepath.Clean(signaturePath), signature, 0600); err != nil {
		return nil, fmt.Errorf("failed to write signature file: %w", err)
	}

	m := measurements.NewMeasurement(measurements.ToolRSA, measurements.OperationSign, len(data), elapsed)
	s.recorder.Record(ctx, m)

	s.logger.Info("Signature saved to ", signaturePath)
	return m, nil
}

// VerifyFile checks the signature stored at signaturePath against inputPath.
// A mismatching signature returns false without an error.
func (s *RSAService) VerifyFile(ctx context.Context, publicKey *rsa.PublicKey, inputPath, signaturePath string) (bool, *measurements.Measurement, error) {
	data, err := os.ReadFile(filepath.Clean(inputPath))
	if err != nil {
		return false, nil, fmt.Errorf("failed to read input file: %w", err)
	}
	signature, err := os.ReadFile(filepath.Clean(signaturePath))
	if err != nil {
		return false, nil, fmt.Errorf("failed to read signature file: %w", err)
	}

	start := time.Now()
	valid, err := s.rsaProcessor.Verify(data, signature, publicKey)
	elapsed := time.Since(start)
	if err != nil {
		return false, nil, err
	}

	m := measurements.NewMeasurement(measurements.ToolRSA, measurements.OperationVerify, len(data), elapsed)
	m.Outcome = measurements.OutcomeInvalid
	if valid {
		m.Outcome = measurements.OutcomeValid
	}
	s.recorder.Record(ctx, m)

	return valid, m, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(filepath.Clean(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // OAEP/MGF1 hash, matching PKCS1_OAEP defaults
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/crypto-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/logger"
)

// RSAOAEPProcessor implements cryptoalg.RSAProcessor. Encryption uses OAEP with SHA-1
// and MGF1-SHA-1; signatures use PKCS#1 v1.5 over SHA-256.
type RSAOAEPProcessor struct {
	logger logger.Logger
	random io.Reader
}

// NewRSAProcessor creates and returns a new instance of RSAOAEPProcessor
func NewRSAProcessor(logger logger.Logger) (*RSAOAEPProcessor, error) {
	return &RSAOAEPProcessor{
		logger: logger,
		random: rand.Reader,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified bit size.
func (r *RSAOAEPProcessor) GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(r.random, keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	publicKey := &privateKey.PublicKey
	r.logger.Info("Generated RSA key pair of ", keySize, " bits")
	return privateKey, publicKey, nil
}

// MaxPlaintextSize is k - 2*hLen - 2 for a k-byte modulus; 190 bytes for RSA-2048.
func (r *RSAOAEPProcessor) MaxPlaintextSize(publicKey *rsa.PublicKey) int {
	return publicKey.Size() - 2*sha1.Size - 2
}

// Encrypt encrypts plaintext as a single OAEP block.
func (r *RSAOAEPProcessor) Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	if limit := r.MaxPlaintextSize(publicKey); len(plainText) > limit {
		return nil, fmt.Errorf("%w: %d bytes given, at most %d allowed", cryptoalg.ErrMessageTooLong, len(plainText), limit)
	}

	encryptedData, err := rsa.EncryptOAEP(sha1.New(), r.random, publicKey, plainText, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Debug("RSA encryption succeeded")
	return encryptedData, nil
}

// Decrypt decrypts a single OAEP block.
func (r *RSAOAEPProcessor) Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	decryptedData, err := rsa.DecryptOAEP(sha1.New(), r.random, privateKey, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	r.logger.Debug("RSA decryption succeeded")
	return decryptedData, nil
}

// Sign creates a PKCS#1 v1.5 signature over the SHA-256 digest of data.
func (r *RSAOAEPProcessor) Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}

	hashed := sha256.Sum256(data)

	signature, err := rsa.SignPKCS1v15(r.random, privateKey, crypto.SHA256, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign data: %w", err)
	}

	r.logger.Debug("RSA signing succeeded")
	return signature, nil
}

// Verify checks a PKCS#1 v1.5 signature. A mismatch is reported as false, not as an error.
func (r *RSAOAEPProcessor) Verify(data []byte, signature []byte, publicKey *rsa.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, errors.New("public key cannot be nil")
	}

	hashed := sha256.Sum256(data)

	if err := rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, hashed[:], signature); err != nil {
		r.logger.Debug("RSA signature rejected: ", err)
		return false, nil
	}

	r.logger.Debug("RSA signature verified successfully")
	return true, nil
}

// SavePrivateKeyToFile saves the RSA private key to a PEM-encoded file (PKCS#1 format).
func (r *RSAOAEPProcessor) SavePrivateKeyToFile(privateKey *rsa.PrivateKey, filename string) error {
	if privateKey == nil {
		return errors.New("private key cannot be nil")
	}

	privKeyPem := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}

	if err := writePEMFile(filename, privKeyPem, 0600); err != nil {
		return fmt.Errorf("failed to save private key: %w", err)
	}

	r.logger.Info("Saved RSA private key ", filename)
	return nil
}

// SavePublicKeyToFile saves the RSA public key to a PEM-encoded file (PKIX format).
func (r *RSAOAEPProcessor) SavePublicKeyToFile(publicKey *rsa.PublicKey, filename string) error {
	if publicKey == nil {
		return errors.New("public key cannot be nil")
	}

	pubKeyBytes, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return fmt.Errorf("failed to marshal public key: %w", err)
	}

	pubKeyPem := &pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubKeyBytes,
	}

	if err := writePEMFile(filename, pubKeyPem, 0644); err != nil {
		return fmt.Errorf("failed to save public key: %w", err)
	}

	r.logger.Info("Saved RSA public key ", filename)
	return nil
}

// ReadPrivateKey reads an RSA private key from a PEM-encoded file (PKCS#1 or PKCS#8 format).
func (r *RSAOAEPProcessor) ReadPrivateKey(privateKeyPath string) (*rsa.PrivateKey, error) {
	block, err := readPEMFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read private key: %w", err)
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	privateKeyInterface, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key in either PKCS#1 or PKCS#8 format: %w", err)
	}

	privateKey, ok := privateKeyInterface.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not of type RSA")
	}

	return privateKey, nil
}

// ReadPublicKey reads an RSA public key from a PEM-encoded file (PKCS#1 or PKIX format).
func (r *RSAOAEPProcessor) ReadPublicKey(publicKeyPath string) (*rsa.PublicKey, error) {
	block, err := readPEMFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read public key: %w", err)
	}

	publicKey, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err == nil {
		return publicKey, nil
	}

	pubKeyInterface, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key in either PKCS#1 or PKIX format: %w", err)
	}

	publicKey, ok := pubKeyInterface.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not of type RSA")
	}

	return publicKey, nil
}

func writePEMFile(filename string, block *pem.Block, perm os.FileMode) error {
	file, err := os.OpenFile(filepath.Clean(filename), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}

	if err := pem.Encode(file, block); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode %s: %w", block.Type, err)
	}

	return file.Close()
}

func readPEMFile(path string) (*pem.Block, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found in %s", path)
	}

	return block, nil
}

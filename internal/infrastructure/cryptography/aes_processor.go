package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/logger"
)

// AESCBCProcessor implements cryptoalg.AESProcessor with AES in CBC mode and PKCS#7 padding.
// Ciphertexts are laid out as IV ‖ CBC-ciphertext.
type AESCBCProcessor struct {
	logger logger.Logger
	random io.Reader
}

// NewAESProcessor creates and returns a new instance of AESCBCProcessor
func NewAESProcessor(logger logger.Logger) (*AESCBCProcessor, error) {
	return &AESCBCProcessor{
		logger: logger,
		random: rand.Reader,
	}, nil
}

// GenerateKey generates a random AES key of the specified size.
// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
func (a *AESCBCProcessor) GenerateKey(keySize int) ([]byte, error) {
	if err := checkAESKeySize(keySize); err != nil {
		return nil, err
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(a.random, key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}

	a.logger.Info("Generated AES key of ", keySize*8, " bits")
	return key, nil
}

// Encrypt pads data with PKCS#7 and encrypts it under a fresh random IV.
func (a *AESCBCProcessor) Encrypt(data, key []byte) ([]byte, error) {
	if err := checkAESKeySize(len(key)); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	padded := pkcs7Pad(data, aes.BlockSize)
	out := make([]byte, cryptoalg.AESIVSize+len(padded))

	iv := out[:cryptoalg.AESIVSize]
	if _, err := io.ReadFull(a.random, iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[cryptoalg.AESIVSize:], padded)

	a.logger.Debug("AES-CBC encryption succeeded")
	return out, nil
}

// Decrypt splits off the IV, decrypts the remaining blocks and removes the padding.
func (a *AESCBCProcessor) Decrypt(ciphertext, key []byte) ([]byte, error) {
	if err := checkAESKeySize(len(key)); err != nil {
		return nil, err
	}

	if len(ciphertext) < cryptoalg.AESIVSize+aes.BlockSize {
		return nil, fmt.Errorf("%w: %d bytes", cryptoalg.ErrCiphertextTooShort, len(ciphertext))
	}

	iv := ciphertext[:cryptoalg.AESIVSize]
	body := ciphertext[cryptoalg.AESIVSize:]
	if len(body)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext is not a multiple of the block size")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	plain := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, body)

	unpadded, err := pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	a.logger.Debug("AES-CBC decryption succeeded")
	return unpadded, nil
}

func checkAESKeySize(keySize int) error {
	switch keySize {
	case cryptoalg.AESKeySize128, cryptoalg.AESKeySize192, cryptoalg.AESKeySize256:
		return nil
	default:
		return fmt.Errorf("%w: %d bytes (must be 16, 24 or 32)", cryptoalg.ErrInvalidKeySize, keySize)
	}
}

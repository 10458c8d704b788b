//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"testing"

	"github.com/MGTheTrain/crypto-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TestAESKey128 = 16
	TestAESKey256 = 32
)

func setupAESProcessor(t *testing.T) *AESCBCProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewAESProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestAESProcessor(t *testing.T) {
	processor := setupAESProcessor(t)

	t.Run("EncryptDecrypt", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)

		plainText := []byte("This is a test message.")

		ciphertext, err := processor.Encrypt(plainText, key)
		require.NoError(t, err)

		decryptedText, err := processor.Decrypt(ciphertext, key)
		require.NoError(t, err)
		assert.Equal(t, plainText, decryptedText)
	})

	t.Run("RoundTripLengths", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)

		for _, size := range []int{0, 1, 15, 16, 17, 31, 32, 1000} {
			plainText := bytes.Repeat([]byte{0xA5}, size)

			ciphertext, err := processor.Encrypt(plainText, key)
			require.NoError(t, err)
			assert.Equal(t, cryptoalg.AESIVSize+16*(size/16+1), len(ciphertext), "size %d", size)

			decrypted, err := processor.Decrypt(ciphertext, key)
			require.NoError(t, err)
			assert.Equal(t, plainText, decrypted, "size %d", size)
		}
	})

	t.Run("FreshIVPerEncryption", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)

		plainText := []byte("same input twice")
		first, err := processor.Encrypt(plainText, key)
		require.NoError(t, err)
		second, err := processor.Encrypt(plainText, key)
		require.NoError(t, err)

		assert.NotEqual(t, first[:cryptoalg.AESIVSize], second[:cryptoalg.AESIVSize])
		assert.NotEqual(t, first, second)
	})

	t.Run("EncryptionWithInvalidKey", func(t *testing.T) {
		key := []byte("shortkey")
		plainText := []byte("This is a test.")

		_, err := processor.Encrypt(plainText, key)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidKeySize)
	})

	t.Run("GenerateKey", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey128)
		assert.NoError(t, err)
		assert.Equal(t, TestAESKey128, len(key))

		key256, err := processor.GenerateKey(TestAESKey256)
		assert.NoError(t, err)
		assert.Equal(t, TestAESKey256, len(key256))

		_, err = processor.GenerateKey(20)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidKeySize)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)

		plainText := []byte("Test decryption with wrong key.")
		ciphertext, err := processor.Encrypt(plainText, key)
		require.NoError(t, err)

		wrongKey, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)

		decrypted, err := processor.Decrypt(ciphertext, wrongKey)
		if err == nil {
			assert.NotEqual(t, plainText, decrypted, "Decryption with wrong key should not return original message")
		} else {
			assert.ErrorIs(t, err, cryptoalg.ErrInvalidPadding)
		}
	})

	t.Run("TamperedLastBlock", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)

		plainText := []byte("tamper with the final padding block")
		ciphertext, err := processor.Encrypt(plainText, key)
		require.NoError(t, err)

		// Flipping a bit in the second to last block flips the same bit of the
		// final plaintext block, which always breaks the padding byte here.
		tampered := append([]byte(nil), ciphertext...)
		tampered[len(tampered)-17] ^= 0x80

		decrypted, err := processor.Decrypt(tampered, key)
		if err == nil {
			assert.NotEqual(t, plainText, decrypted)
		} else {
			assert.ErrorIs(t, err, cryptoalg.ErrInvalidPadding)
		}
	})

	// CBC is unauthenticated: flips outside the last block decrypt without error.
	t.Run("TamperedIV", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)

		plainText := []byte("attack at dawn, hold the eastern gate")
		ciphertext, err := processor.Encrypt(plainText, key)
		require.NoError(t, err)

		tampered := append([]byte(nil), ciphertext...)
		tampered[0] ^= 0x01

		decrypted, err := processor.Decrypt(tampered, key)
		require.NoError(t, err)

		expected := append([]byte(nil), plainText...)
		expected[0] ^= 0x01
		assert.Equal(t, expected, decrypted)
	})

	t.Run("TamperedInnerBlock", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)

		plainText := bytes.Repeat([]byte("0123456789"), 4)
		ciphertext, err := processor.Encrypt(plainText, key)
		require.NoError(t, err)
		require.Len(t, ciphertext, 16+48)

		tampered := append([]byte(nil), ciphertext...)
		tampered[16] ^= 0x01

		decrypted, err := processor.Decrypt(tampered, key)
		require.NoError(t, err)
		require.Len(t, decrypted, len(plainText))

		assert.NotEqual(t, plainText[:16], decrypted[:16])
		assert.Equal(t, plainText[16]^0x01, decrypted[16])
		assert.Equal(t, plainText[17:], decrypted[17:])
	})

	t.Run("DecryptShortCiphertext", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)

		_, err = processor.Decrypt([]byte("short"), key)
		assert.ErrorIs(t, err, cryptoalg.ErrCiphertextTooShort)

		_, err = processor.Decrypt(make([]byte, cryptoalg.AESIVSize), key)
		assert.ErrorIs(t, err, cryptoalg.ErrCiphertextTooShort)
	})

	t.Run("DecryptUnalignedCiphertext", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)

		_, err = processor.Decrypt(make([]byte, cryptoalg.AESIVSize+20), key)
		assert.Error(t, err)
	})
}

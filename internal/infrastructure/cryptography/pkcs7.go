package cryptography

import (
	"crypto/subtle"

	"github.com/MGTheTrain/crypto-lab/internal/domain/cryptoalg"
)

// pkcs7Pad appends between 1 and blockSize bytes, each holding the pad length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

// pkcs7Unpad checks every padding byte and reports any mismatch as ErrInvalidPadding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, cryptoalg.ErrInvalidPadding
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, cryptoalg.ErrInvalidPadding
	}

	good := 1
	for _, b := range data[len(data)-padLen:] {
		good &= subtle.ConstantTimeByteEq(b, byte(padLen))
	}
	if good != 1 {
		return nil, cryptoalg.ErrInvalidPadding
	}

	return data[:len(data)-padLen], nil
}

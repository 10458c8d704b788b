package cryptography

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hasher implements cryptoalg.Hasher
type SHA256Hasher struct{}

// NewSHA256Hasher creates a SHA256Hasher
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Sum returns the lowercase hex SHA-256 digest of data.
func (h *SHA256Hasher) Sum(data []byte) string {
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}

// SumText returns the lowercase hex SHA-256 digest of the UTF-8 bytes of text.
func (h *SHA256Hasher) SumText(text string) string {
	return h.Sum([]byte(text))
}

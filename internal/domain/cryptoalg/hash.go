package cryptoalg

// Hasher computes SHA-256 digests rendered as lowercase hex.
type Hasher interface {
	// Sum returns the hex digest of data.
	Sum(data []byte) string

	// SumText returns the hex digest of the UTF-8 bytes of text.
	SumText(text string) string
}

package cryptoalg

import "errors"

var (
	// ErrInvalidKeySize is returned for AES keys that are not 16, 24 or 32 bytes long.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrCiphertextTooShort is returned when a ciphertext cannot hold an IV and one block.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrInvalidPadding is returned when PKCS#7 padding does not verify after decryption.
	// A wrong key or a tampered ciphertext usually ends here.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrMessageTooLong is returned when a plaintext exceeds the RSA-OAEP payload limit.
	ErrMessageTooLong = errors.New("message too long for RSA key size")
)

// ErrInvalidMapping is returned when a substitution override is not a pair of letters.
var ErrInvalidMapping = errors.New("invalid substitution mapping")

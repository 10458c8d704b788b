package cryptoalg

// AESProcessor handles AES symmetric encryption operations.
// AES is used for encrypting/decrypting data with a shared secret key.
type AESProcessor interface {
	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// Encrypt pads data with PKCS#7, encrypts it in CBC mode under a fresh random IV
	// and returns IV ‖ ciphertext.
	Encrypt(data, key []byte) ([]byte, error)

	// Decrypt splits IV ‖ ciphertext, decrypts in CBC mode and strips the PKCS#7 padding.
	Decrypt(ciphertext, key []byte) ([]byte, error)
}

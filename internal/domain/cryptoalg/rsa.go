package cryptoalg

import "crypto/rsa"

// RSAProcessor handles RSA asymmetric cryptographic operations.
// RSA supports both encryption/decryption AND digital signatures.
type RSAProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified bit size.
	GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// Encrypt encrypts plaintext as a single RSA-OAEP (SHA-1) block.
	// Plaintexts longer than MaxPlaintextSize fail with ErrMessageTooLong.
	Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// Decrypt decrypts a single RSA-OAEP (SHA-1) block.
	Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// MaxPlaintextSize returns the largest plaintext Encrypt accepts for publicKey.
	MaxPlaintextSize(publicKey *rsa.PublicKey) int

	// Sign signs the SHA-256 digest of data with PKCS#1 v1.5.
	Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Verify checks a PKCS#1 v1.5 signature over the SHA-256 digest of data.
	// A signature that does not match yields (false, nil); errors are reserved
	// for unusable inputs such as a nil key.
	Verify(data []byte, signature []byte, publicKey *rsa.PublicKey) (bool, error)

	// SavePrivateKeyToFile saves the RSA private key to a PEM-encoded file (PKCS#1 format).
	SavePrivateKeyToFile(privateKey *rsa.PrivateKey, filename string) error

	// SavePublicKeyToFile saves the RSA public key to a PEM-encoded file (PKIX format).
	SavePublicKeyToFile(publicKey *rsa.PublicKey, filename string) error

	// ReadPrivateKey reads an RSA private key from a PEM-encoded file (PKCS#1 or PKCS#8).
	ReadPrivateKey(privateKeyPath string) (*rsa.PrivateKey, error)

	// ReadPublicKey reads an RSA public key from a PEM-encoded file (PKCS#1 or PKIX).
	ReadPublicKey(publicKeyPath string) (*rsa.PublicKey, error)
}

package cryptoalg

// AlgorithmAES represents the AES encryption algorithm
const AlgorithmAES = "AES"

// AlgorithmRSA represents the RSA encryption/signature algorithm
const AlgorithmRSA = "RSA"

// AlgorithmSHA256 represents the SHA-256 hash function
const AlgorithmSHA256 = "SHA-256"

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// AESIVSize is the CBC initialization vector length, equal to the AES block size
const AESIVSize = 16

// RSAKeySize2048 is the default RSA modulus size in bits
const RSAKeySize2048 = 2048

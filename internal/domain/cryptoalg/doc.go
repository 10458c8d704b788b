// Package cryptoalg defines the processor contracts for the cryptographic operations
// demonstrated by crypto-lab: AES-CBC file encryption, RSA-OAEP encryption with
// PKCS#1 v1.5 signatures, SHA-256 hashing and frequency analysis of
// substitution ciphers.
package cryptoalg

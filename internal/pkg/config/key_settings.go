package config

import (
	"fmt"

	"github.com/MGTheTrain/crypto-lab/internal/pkg/validators"
)

// Default key file locations, relative to the working directory
const (
	DefaultAESKeyPath     = "aes_key.bin"
	DefaultPrivateKeyPath = "private_key.pem"
	DefaultPublicKeyPath  = "public_key.pem"
)

// SymmetricKeySettings describes the persisted AES key. KeySize is in bits.
type SymmetricKeySettings struct {
	Algorithm string `mapstructure:"algorithm" yaml:"algorithm" toml:"algorithm" validate:"required,eq=AES"`
	KeySize   int    `mapstructure:"key_size" yaml:"key_size" toml:"key_size" validate:"required,keysize"`
	Path      string `mapstructure:"path" yaml:"path" toml:"path" validate:"required"`
}

// AsymmetricKeySettings describes the persisted RSA key pair. KeySize is in bits.
type AsymmetricKeySettings struct {
	Algorithm      string `mapstructure:"algorithm" yaml:"algorithm" toml:"algorithm" validate:"required,eq=RSA"`
	KeySize        int    `mapstructure:"key_size" yaml:"key_size" toml:"key_size" validate:"required,keysize"`
	PrivateKeyPath string `mapstructure:"private_key_path" yaml:"private_key_path" toml:"private_key_path" validate:"required"`
	PublicKeyPath  string `mapstructure:"public_key_path" yaml:"public_key_path" toml:"public_key_path" validate:"required,nefield=PrivateKeyPath"`
}

// KeySettings groups the key material used by the AES and RSA tools
type KeySettings struct {
	AES SymmetricKeySettings  `mapstructure:"aes" yaml:"aes" toml:"aes"`
	RSA AsymmetricKeySettings `mapstructure:"rsa" yaml:"rsa" toml:"rsa"`
}

// DefaultKeySettings returns AES-256 and RSA-2048 with the conventional file names
func DefaultKeySettings() KeySettings {
	return KeySettings{
		AES: SymmetricKeySettings{
			Algorithm: "AES",
			KeySize:   256,
			Path:      DefaultAESKeyPath,
		},
		RSA: AsymmetricKeySettings{
			Algorithm:      "RSA",
			KeySize:        2048,
			PrivateKeyPath: DefaultPrivateKeyPath,
			PublicKeyPath:  DefaultPublicKeyPath,
		},
	}
}

// Validate checks that all fields in KeySettings are valid
func (s *KeySettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeySettings: %w", err)
	}

	return nil
}

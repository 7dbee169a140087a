package testutil

import (
	"hangar/internal/encryption"
	"hangar/internal/hangar"
)

// NewTestEncryptor creates a new test encryptor for testing.
func NewTestEncryptor() hangar.Encryptor {
	return encryption.NewTestEncryptor()
}

package hangar

import (
	"io"

	"hangar/internal/model"
)

// Catalog resolves part references to display metadata. The catalog is
// an external collaborator; the engine only consults the publication
// status of referenced items during the publish gate.
type Catalog interface {
	// Item returns metadata for a catalog item, or nil if unknown.
	Item(id string) (*model.CatalogItem, error)
}

// AssetStore holds approved image bytes keyed by an opaque asset id.
// The engine stores and clears ids; it never inspects image bytes.
type AssetStore interface {
	// PutAsset stores an asset. Storing the same id twice overwrites.
	PutAsset(id string, r io.Reader, size int64) error

	// GetAsset retrieves an asset by id and writes it to w.
	GetAsset(id string, w io.Writer) error

	// DeleteAsset removes an asset. Deleting a missing asset is a no-op.
	DeleteAsset(id string) error
}

// Encryptor handles at-rest encryption of image assets and unlocking
// for export. Encryption uses the public key only; decryption requires
// a passphrase to unlock the private key for the session.
type Encryptor interface {
	// Setup performs one-time key generation. Called during `hangar keys init`.
	Setup(passphrase string) error

	// Encrypt encrypts data read from r and writes ciphertext to w.
	Encrypt(r io.Reader, w io.Writer) error

	// Unlock decrypts the private key using the passphrase and returns
	// a DecryptionContext valid for the session.
	Unlock(passphrase string) (DecryptionContext, error)

	// IsConfigured returns true if both key files exist.
	IsConfigured() bool
}

// DecryptionContext holds an unlocked private key in memory for the
// duration of an export session. The unlocked key is never written to
// disk.
type DecryptionContext interface {
	// Decrypt decrypts data read from r and writes plaintext to w.
	Decrypt(r io.Reader, w io.Writer) error
}

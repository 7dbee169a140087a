package hangar

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

// Clock abstracts time retrieval so business logic is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator abstracts unique ID generation so tests are deterministic.
type IDGenerator interface {
	New() string
}

// UUIDGenerator produces random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }

// TokenGenerator mints secret share-link tokens. Tokens must be
// unguessable; UUIDs are not suitable here.
type TokenGenerator interface {
	New() string
}

// SecretTokenGenerator produces 256-bit random tokens, base64url encoded.
type SecretTokenGenerator struct{}

func (SecretTokenGenerator) New() string {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failure means the platform entropy source is
		// broken; nothing sensible can continue.
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b[:])
}

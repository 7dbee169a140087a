package testutil

import (
	"hangar/internal/assetstore"
)

// NewTestAssetStore creates a new in-memory asset store for testing.
func NewTestAssetStore() *assetstore.MemoryStore {
	return assetstore.NewMemoryStore()
}

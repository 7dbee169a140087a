package assetstore

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"hangar/internal/hangar"
)

// MemoryStore is an in-memory implementation of the AssetStore
// interface, useful for testing. Safe for concurrent use.
type MemoryStore struct {
	assets map[string][]byte
	mu     sync.RWMutex
}

var _ hangar.AssetStore = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory asset store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{assets: make(map[string][]byte)}
}

// PutAsset stores an asset. Storing the same id twice overwrites.
func (m *MemoryStore) PutAsset(id string, r io.Reader, size int64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read asset: %w", err)
	}
	if int64(len(data)) != size {
		return fmt.Errorf("size mismatch: expected %d bytes, got %d", size, len(data))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[id] = data
	return nil
}

// GetAsset retrieves an asset by id and writes it to w.
func (m *MemoryStore) GetAsset(id string, w io.Writer) error {
	m.mu.RLock()
	data, ok := m.assets[id]
	m.mu.RUnlock()

	if !ok {
		return fmt.Errorf("asset not found: %s", id)
	}
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write asset: %w", err)
	}
	return nil
}

// DeleteAsset removes an asset. Deleting a missing asset is a no-op.
func (m *MemoryStore) DeleteAsset(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.assets, id)
	return nil
}

// Len returns the number of stored assets. Test helper.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.assets)
}

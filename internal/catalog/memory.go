package catalog

import (
	"sync"

	"hangar/internal/hangar"
	"hangar/internal/model"
)

// MemoryCatalog is an in-memory catalog, useful for testing and for
// running without a catalog file. Safe for concurrent use.
type MemoryCatalog struct {
	items map[string]model.CatalogItem
	mu    sync.RWMutex
}

var _ hangar.Catalog = (*MemoryCatalog)(nil)

// NewMemoryCatalog creates an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{items: make(map[string]model.CatalogItem)}
}

// Add registers or replaces an item.
func (c *MemoryCatalog) Add(item model.CatalogItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[item.ID] = item
}

// Item returns metadata for a catalog item, or nil if unknown.
func (c *MemoryCatalog) Item(id string) (*model.CatalogItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

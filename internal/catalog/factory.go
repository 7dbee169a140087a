package catalog

import (
	"fmt"

	"hangar/internal/config"
	"hangar/internal/hangar"
)

// NewCatalogFromConfig creates a Catalog implementation based on the
// catalog config type.
func NewCatalogFromConfig(cfg config.CatalogConfig) (hangar.Catalog, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryCatalog(), nil
	case "file":
		if cfg.Path == "" {
			return nil, fmt.Errorf("file catalog requires path to be set")
		}
		return NewFileCatalog(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown catalog type: %s", cfg.Type)
	}
}

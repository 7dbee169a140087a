package catalog

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"hangar/internal/hangar"
	"hangar/internal/model"
)

// FileCatalog serves catalog items from a TOML file loaded at startup:
//
//	[[item]]
//	id = "emax-eco-2306"
//	brand = "EMAX"
//	model = "ECO II 2306"
//	price_cents = 1199
//	image_url = "https://..."
//	publication_status = "PUBLISHED"
//
// The real catalog is an external system; this backend stands in for it
// in single-binary deployments.
type FileCatalog struct {
	items map[string]model.CatalogItem
}

var _ hangar.Catalog = (*FileCatalog)(nil)

type catalogFile struct {
	Items []catalogFileItem `toml:"item"`
}

type catalogFileItem struct {
	ID                string `toml:"id"`
	Brand             string `toml:"brand"`
	Model             string `toml:"model"`
	PriceCents        int64  `toml:"price_cents"`
	ImageURL          string `toml:"image_url"`
	PublicationStatus string `toml:"publication_status"`
}

// NewFileCatalog loads a catalog from the given TOML file.
func NewFileCatalog(path string) (*FileCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var cf catalogFile
	if err := toml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("decoding catalog file %s: %w", path, err)
	}

	items := make(map[string]model.CatalogItem, len(cf.Items))
	for _, it := range cf.Items {
		if it.ID == "" {
			return nil, fmt.Errorf("catalog file %s: item with empty id", path)
		}
		items[it.ID] = model.CatalogItem{
			ID:                it.ID,
			Brand:             it.Brand,
			Model:             it.Model,
			PriceCents:        it.PriceCents,
			ImageURL:          it.ImageURL,
			PublicationStatus: it.PublicationStatus,
		}
	}
	return &FileCatalog{items: items}, nil
}

// Item returns metadata for a catalog item, or nil if unknown.
func (c *FileCatalog) Item(id string) (*model.CatalogItem, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"hangar/internal/model"
)

func TestMemoryCatalog(t *testing.T) {
	c := NewMemoryCatalog()
	c.Add(model.CatalogItem{ID: "motor-1", Brand: "EMAX", PublicationStatus: "PUBLISHED"})

	t.Run("returns a known item", func(t *testing.T) {
		item, err := c.Item("motor-1")
		if err != nil {
			t.Fatalf("Item() error = %v", err)
		}
		if item == nil || item.Brand != "EMAX" {
			t.Errorf("Item() = %+v", item)
		}
	})

	t.Run("unknown item is nil, not an error", func(t *testing.T) {
		item, err := c.Item("nope")
		if err != nil {
			t.Fatalf("Item() error = %v", err)
		}
		if item != nil {
			t.Errorf("Item() = %+v, want nil", item)
		}
	})
}

func TestFileCatalog(t *testing.T) {
	writeCatalog := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "catalog.toml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing catalog file: %v", err)
		}
		return path
	}

	t.Run("loads items from TOML", func(t *testing.T) {
		path := writeCatalog(t, `
[[item]]
id = "emax-eco-2306"
brand = "EMAX"
model = "ECO II 2306"
price_cents = 1199
publication_status = "PUBLISHED"

[[item]]
id = "legacy-cam"
brand = "OldCo"
model = "Cam"
publication_status = "DRAFT"
`)
		c, err := NewFileCatalog(path)
		if err != nil {
			t.Fatalf("NewFileCatalog() error = %v", err)
		}

		item, err := c.Item("emax-eco-2306")
		if err != nil {
			t.Fatalf("Item() error = %v", err)
		}
		if item == nil {
			t.Fatal("Item() = nil")
		}
		if item.PriceCents != 1199 {
			t.Errorf("PriceCents = %d, want 1199", item.PriceCents)
		}
		if item.PublicationStatus != "PUBLISHED" {
			t.Errorf("PublicationStatus = %q", item.PublicationStatus)
		}

		if missing, _ := c.Item("nope"); missing != nil {
			t.Errorf("unknown item = %+v, want nil", missing)
		}
	})

	t.Run("rejects items without an id", func(t *testing.T) {
		path := writeCatalog(t, `
[[item]]
brand = "EMAX"
`)
		if _, err := NewFileCatalog(path); err == nil {
			t.Error("NewFileCatalog() accepted an item without an id")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := NewFileCatalog("/no/such/catalog.toml"); err == nil {
			t.Error("NewFileCatalog() succeeded for a missing file")
		}
	})
}

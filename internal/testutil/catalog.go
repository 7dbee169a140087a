package testutil

import (
	"hangar/internal/catalog"
	"hangar/internal/model"
)

// NewTestCatalog creates an in-memory catalog pre-seeded with one
// published item per required gear type, keyed by well-known test ids:
// "frame-1", "motor-1", "fc-1", "prop-1". "retired-1" is a known item
// that is not published.
func NewTestCatalog() *catalog.MemoryCatalog {
	c := catalog.NewMemoryCatalog()
	for _, item := range []model.CatalogItem{
		{ID: "frame-1", Brand: "Apex", Model: "HD5", PriceCents: 4999, PublicationStatus: "PUBLISHED"},
		{ID: "motor-1", Brand: "EMAX", Model: "ECO II 2306", PriceCents: 1199, PublicationStatus: "PUBLISHED"},
		{ID: "fc-1", Brand: "SpeedyBee", Model: "F405 V4", PriceCents: 3599, PublicationStatus: "PUBLISHED"},
		{ID: "prop-1", Brand: "HQProp", Model: "5x4.3x3", PriceCents: 299, PublicationStatus: "PUBLISHED"},
		{ID: "retired-1", Brand: "OldCo", Model: "Legacy", PriceCents: 999, PublicationStatus: "DRAFT"},
	} {
		c.Add(item)
	}
	return c
}

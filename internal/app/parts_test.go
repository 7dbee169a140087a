package app

import (
	"testing"
)

func TestParsePartSpecs(t *testing.T) {
	t.Run("parses the full form", func(t *testing.T) {
		parts, err := ParsePartSpecs([]string{"motor:emax-eco-2306:1:left rear"})
		if err != nil {
			t.Fatalf("ParsePartSpecs() error = %v", err)
		}
		if len(parts) != 1 {
			t.Fatalf("got %d parts, want 1", len(parts))
		}
		p := parts[0]
		if p.GearType != "motor" || p.CatalogItemID != "emax-eco-2306" {
			t.Errorf("part = %+v", p)
		}
		if p.Position != 1 {
			t.Errorf("Position = %d, want 1", p.Position)
		}
		if p.Notes != "left rear" {
			t.Errorf("Notes = %q", p.Notes)
		}
	})

	t.Run("position and notes are optional", func(t *testing.T) {
		parts, err := ParsePartSpecs([]string{"frame:apex-hd"})
		if err != nil {
			t.Fatalf("ParsePartSpecs() error = %v", err)
		}
		if parts[0].Position != 0 || parts[0].Notes != "" {
			t.Errorf("part = %+v, want zero-value position and notes", parts[0])
		}
	})

	t.Run("notes may contain colons", func(t *testing.T) {
		parts, err := ParsePartSpecs([]string{"motor:emax:0:note: with colon"})
		if err != nil {
			t.Fatalf("ParsePartSpecs() error = %v", err)
		}
		if parts[0].Notes != "note: with colon" {
			t.Errorf("Notes = %q", parts[0].Notes)
		}
	})

	t.Run("rejects malformed specs", func(t *testing.T) {
		if _, err := ParsePartSpecs([]string{"just-a-gear-type"}); err == nil {
			t.Error("ParsePartSpecs() accepted a spec without an item id")
		}
		if _, err := ParsePartSpecs([]string{"motor:emax:notanumber"}); err == nil {
			t.Error("ParsePartSpecs() accepted a non-numeric position")
		}
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		parts, err := ParsePartSpecs(nil)
		if err != nil {
			t.Fatalf("ParsePartSpecs() error = %v", err)
		}
		if parts != nil {
			t.Errorf("parts = %+v, want nil", parts)
		}
	})
}

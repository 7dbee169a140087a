package hangar

import (
	"fmt"
	"strings"

	"hangar/internal/model"
)

// RequiredGearTypes are the part categories a build must carry before it
// can be published.
var RequiredGearTypes = []string{"frame", "motor", "flight_controller", "propeller"}

// publishGate runs structural validation over a build's content and
// parts before any transition into PUBLISHED. It never mutates state;
// a failed gate is reported as a value, and the caller returns it
// without touching the store.
func (s *Service) publishGate(b *model.Build) (*ValidationResult, error) {
	parts, err := s.database.GetParts(b.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching parts for validation: %w", err)
	}

	res := &ValidationResult{}

	if strings.TrimSpace(b.Title) == "" {
		res.add("title", CodeMissingRequired)
	}
	if strings.TrimSpace(b.Description) == "" {
		res.add("description", CodeMissingRequired)
	}
	if strings.TrimSpace(b.ImageAssetID) == "" {
		res.add("image", CodeMissingRequired)
	}

	present := make(map[string]bool, len(parts))
	for _, p := range parts {
		present[p.GearType] = true
	}
	for _, gearType := range RequiredGearTypes {
		if !present[gearType] {
			res.add(gearType, CodeMissingRequired)
		}
	}

	for _, p := range parts {
		if p.CatalogItemID == "" {
			continue
		}
		item, err := s.catalog.Item(p.CatalogItemID)
		if err != nil {
			return nil, fmt.Errorf("resolving catalog item %s: %w", p.CatalogItemID, err)
		}
		switch {
		case item == nil:
			res.add(p.GearType, CodeUnknownItem)
		case item.PublicationStatus != string(StatusPublished):
			res.add(p.GearType, CodeItemNotPublished)
		}
	}

	return res, nil
}

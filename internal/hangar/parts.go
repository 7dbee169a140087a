package hangar

import (
	"strings"

	"hangar/internal/model"
)

// NormalizeParts prepares a caller-supplied parts list for storage on
// the given build. Entries with a blank gear type or a blank catalog
// item reference are silently dropped — partially filled form rows are
// not an error. Positions are clamped to >= 0. No de-duplication is
// performed across gear types: several position-ordered parts of the
// same type (propellers, say) are valid, as is having none of a type.
func NormalizeParts(buildID string, parts []*model.BuildPart, idgen IDGenerator) []*model.BuildPart {
	out := make([]*model.BuildPart, 0, len(parts))
	for _, p := range parts {
		gearType := strings.TrimSpace(p.GearType)
		itemID := strings.TrimSpace(p.CatalogItemID)
		if gearType == "" || itemID == "" {
			continue
		}

		position := p.Position
		if position < 0 {
			position = 0
		}

		id := p.ID
		if id == "" {
			id = idgen.New()
		}

		out = append(out, &model.BuildPart{
			ID:            id,
			BuildID:       buildID,
			GearType:      gearType,
			CatalogItemID: itemID,
			Position:      position,
			Notes:         p.Notes,
		})
	}
	return out
}

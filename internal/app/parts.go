package app

import (
	"fmt"
	"strconv"
	"strings"

	"hangar/internal/model"
)

// ParsePartSpecs converts CLI part specifications into part rows.
// Each spec has the form:
//
//	GEAR_TYPE:CATALOG_ITEM_ID[:POSITION[:NOTES]]
//
// e.g. "motor:emax-eco-2306:1" or "frame:apex-hd:0:crash spare".
// IDs and build association are filled in later by the service.
func ParsePartSpecs(specs []string) ([]*model.BuildPart, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	parts := make([]*model.BuildPart, 0, len(specs))
	for _, spec := range specs {
		fields := strings.SplitN(spec, ":", 4)
		if len(fields) < 2 {
			return nil, fmt.Errorf("invalid part spec %q: want GEAR_TYPE:CATALOG_ITEM_ID[:POSITION[:NOTES]]", spec)
		}

		p := &model.BuildPart{
			GearType:      strings.TrimSpace(fields[0]),
			CatalogItemID: strings.TrimSpace(fields[1]),
		}

		if len(fields) >= 3 && fields[2] != "" {
			pos, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("invalid position in part spec %q: %w", spec, err)
			}
			p.Position = pos
		}
		if len(fields) == 4 {
			p.Notes = fields[3]
		}

		parts = append(parts, p)
	}
	return parts, nil
}

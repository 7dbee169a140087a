package hangar

import (
	"errors"
	"fmt"

	"hangar/internal/model"
)

// stageRevision returns the open staged revision for a published build,
// creating it on first edit by copying the published row's content and
// parts into a new DRAFT linked via RevisionOfBuildID.
//
// Two concurrent first edits can both miss the lookup and race the
// insert. The store's partial unique index over open revisions is the
// tie-breaker: the loser sees ErrDuplicateRevision and adopts the
// winner's row instead of failing, so both requests end up editing the
// same staged revision.
func (s *Service) stageRevision(published *model.Build) (*model.Build, error) {
	rev, err := s.database.FindOpenRevision(published.OwnerUserID, published.ID)
	if err != nil {
		return nil, fmt.Errorf("finding open revision: %w", err)
	}
	if rev != nil {
		return rev, nil
	}

	parts, err := s.database.GetParts(published.ID)
	if err != nil {
		return nil, fmt.Errorf("copying published parts: %w", err)
	}

	now := s.clock.Now()
	rev = &model.Build{
		ID:                s.idgen.New(),
		OwnerUserID:       published.OwnerUserID,
		Status:            string(StatusDraft),
		RevisionOfBuildID: published.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	applyContent(rev, contentOf(published))

	revParts := make([]*model.BuildPart, 0, len(parts))
	for _, p := range parts {
		revParts = append(revParts, &model.BuildPart{
			ID:            s.idgen.New(),
			BuildID:       rev.ID,
			GearType:      p.GearType,
			CatalogItemID: p.CatalogItemID,
			Position:      p.Position,
			Notes:         p.Notes,
		})
	}

	err = s.database.CreateRevision(rev, revParts)
	if err == nil {
		s.logger.Info("revision staged", "build", published.ID, "revision", rev.ID)
		return rev, nil
	}
	if !errors.Is(err, ErrDuplicateRevision) {
		return nil, fmt.Errorf("staging revision: %w", err)
	}

	// Lost the insert race; the winner's row is the mutation target.
	rev, lookupErr := s.database.FindOpenRevision(published.OwnerUserID, published.ID)
	if lookupErr != nil {
		return nil, fmt.Errorf("recovering from revision conflict: %w", lookupErr)
	}
	if rev == nil {
		// The winner's revision disappeared between the conflict and the
		// re-read (approved or deleted). Surface the conflict.
		return nil, fmt.Errorf("staging revision: %w", err)
	}
	s.logger.Debug("adopted concurrently staged revision", "build", published.ID, "revision", rev.ID)
	return rev, nil
}

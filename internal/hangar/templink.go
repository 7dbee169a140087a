package hangar

import (
	"fmt"
	"strings"

	"hangar/internal/model"
)

// CreateTemp creates an anonymous TEMP build addressed by a fresh secret
// token, expiring TempBuildTTL from now. The token is the only handle to
// the build.
func (s *Service) CreateTemp(content BuildContent, parts []*model.BuildPart) (*model.Build, error) {
	now := s.clock.Now()
	expires := now.Add(TempBuildTTL)
	b := &model.Build{
		ID:        s.idgen.New(),
		Status:    string(StatusTemp),
		Token:     s.tokens.New(),
		ExpiresAt: &expires,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyContent(b, content)

	if err := s.database.CreateBuild(b, NormalizeParts(b.ID, parts, s.idgen)); err != nil {
		return nil, fmt.Errorf("creating temp build: %w", err)
	}

	s.logger.Info("temp build created", "build", b.ID)
	return b, nil
}

// GetTempByToken fetches the build at a share token: a TEMP row still
// inside its TTL, or a SHARED row (shared links never expire).
func (s *Service) GetTempByToken(token string) (*BuildView, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: token required", ErrInvalidInput)
	}

	b, err := s.database.GetBuildByToken(token, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("fetching build by token: %w", err)
	}
	if b == nil {
		return nil, ErrNotFound
	}

	parts, err := s.database.GetParts(b.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching parts: %w", err)
	}
	return &BuildView{Build: b, Parts: parts}, nil
}

// UpdateTempByToken edits a TEMP build copy-on-write: the edit lands in
// a brand-new TEMP row with merged content, a fresh token, and a fresh
// TTL. The old row is untouched and keeps serving its token until it
// expires, so a stale tab still sees its last-known state. Each edit
// being a distinct row is what makes later share snapshots independent;
// the resulting chain of TEMP rows is reclaimed by the expiry sweep.
//
// SHARED builds are read-only; editing one fails.
func (s *Service) UpdateTempByToken(token string, content BuildContent, parts []*model.BuildPart, replaceParts bool) (*model.Build, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: token required", ErrInvalidInput)
	}

	old, err := s.database.GetBuildByToken(token, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("fetching build by token: %w", err)
	}
	if old == nil {
		return nil, ErrNotFound
	}
	if Status(old.Status) == StatusShared {
		return nil, ErrSharedReadOnly
	}

	now := s.clock.Now()
	expires := now.Add(TempBuildTTL)
	fork := &model.Build{
		ID:        s.idgen.New(),
		Status:    string(StatusTemp),
		Token:     s.tokens.New(),
		ExpiresAt: &expires,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyContent(fork, mergeContent(contentOf(old), content))

	var forkParts []*model.BuildPart
	if replaceParts {
		forkParts = NormalizeParts(fork.ID, parts, s.idgen)
	} else {
		oldParts, err := s.database.GetParts(old.ID)
		if err != nil {
			return nil, fmt.Errorf("copying parts: %w", err)
		}
		for _, p := range oldParts {
			forkParts = append(forkParts, &model.BuildPart{
				ID:            s.idgen.New(),
				BuildID:       fork.ID,
				GearType:      p.GearType,
				CatalogItemID: p.CatalogItemID,
				Position:      p.Position,
				Notes:         p.Notes,
			})
		}
	}

	if err := s.database.CreateBuild(fork, forkParts); err != nil {
		return nil, fmt.Errorf("forking temp build: %w", err)
	}

	s.logger.Info("temp build edited", "old", old.ID, "new", fork.ID)
	return fork, nil
}

// ShareTempByToken promotes the TEMP row at token to a permanent SHARED
// snapshot in place: same row, same token, expiry cleared. Promotion is
// one-way and idempotent; sharing an already-SHARED token succeeds
// without change.
func (s *Service) ShareTempByToken(token string) (*model.Build, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: token required", ErrInvalidInput)
	}

	b, err := s.database.PromoteTemp(token, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("sharing temp build: %w", err)
	}
	if b == nil {
		return nil, ErrNotFound
	}

	s.logger.Info("temp build shared", "build", b.ID)
	return b, nil
}

// SweepExpiredTemp deletes every TEMP row whose expiry is at or before
// now. SHARED rows are never candidates: promotion clears their expiry,
// and the sweep predicate additionally refuses to consider any
// non-TEMP status.
func (s *Service) SweepExpiredTemp() (int64, error) {
	n, err := s.database.SweepExpiredTemp(s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("sweeping expired temp builds: %w", err)
	}
	if n > 0 {
		s.logger.Info("expired temp builds swept", "count", n)
	}
	return n, nil
}

// mergeContent overlays edit onto base: empty fields in edit keep the
// base value, so a partial edit from a stale form does not blank out
// fields it never carried.
func mergeContent(base, edit BuildContent) BuildContent {
	if edit.Title != "" {
		base.Title = edit.Title
	}
	if edit.Description != "" {
		base.Description = edit.Description
	}
	if edit.BuildVideoURL != "" {
		base.BuildVideoURL = edit.BuildVideoURL
	}
	if edit.FlightVideoURL != "" {
		base.FlightVideoURL = edit.FlightVideoURL
	}
	if edit.SourceAircraftID != "" {
		base.SourceAircraftID = edit.SourceAircraftID
	}
	if edit.ImageAssetID != "" {
		base.ImageAssetID = edit.ImageAssetID
	}
	return base
}

package hangar

import (
	"fmt"
	"strings"
	"time"

	"hangar/internal/model"
)

// TempBuildTTL is how long an anonymous temp build stays retrievable
// after each create or edit.
const TempBuildTTL = 24 * time.Hour

// Service is the orchestration layer that owns all build mutations: the
// lifecycle state machine, revision staging, the temp/shared link flow,
// parts replacement, and reactions. All store access goes through the
// Database interface; each mutating call is a single transaction there.
type Service struct {
	database  Database
	catalog   Catalog
	assets    AssetStore
	encryptor Encryptor
	logger    Logger
	clock     Clock
	idgen     IDGenerator
	tokens    TokenGenerator
}

// NewService creates a Service with the provided dependencies.
func NewService(database Database, catalog Catalog, assets AssetStore, encryptor Encryptor, logger Logger, clock Clock, idgen IDGenerator, tokens TokenGenerator) *Service {
	return &Service{
		database:  database,
		catalog:   catalog,
		assets:    assets,
		encryptor: encryptor,
		logger:    logger,
		clock:     clock,
		idgen:     idgen,
		tokens:    tokens,
	}
}

// BuildView is a build as presented to its reader: the row, its parts,
// and — for an owner looking at their own published build — the id of
// the staged revision the content was projected from, if any.
type BuildView struct {
	Build            *model.Build
	Parts            []*model.BuildPart
	StagedRevisionID string
}

// CreateDraft creates an owned DRAFT build with the given content and
// parts.
func (s *Service) CreateDraft(ownerID string, content BuildContent, parts []*model.BuildPart) (*model.Build, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("%w: owner required", ErrInvalidInput)
	}

	now := s.clock.Now()
	b := &model.Build{
		ID:          s.idgen.New(),
		OwnerUserID: ownerID,
		Status:      string(StatusDraft),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyContent(b, content)

	if err := s.database.CreateBuild(b, NormalizeParts(b.ID, parts, s.idgen)); err != nil {
		return nil, fmt.Errorf("creating draft: %w", err)
	}

	s.logger.Info("draft created", "build", b.ID, "owner", ownerID)
	return b, nil
}

// GetBuild returns the owner's view of a build. For a PUBLISHED build
// with an open staged revision the content and parts come from the
// revision; non-owners never see staged content (see GetPublicBuild).
func (s *Service) GetBuild(ownerID, id string) (*BuildView, error) {
	b, revisionID, err := s.database.GetOwnerView(id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("fetching build: %w", err)
	}
	if b == nil {
		return nil, ErrNotFound
	}

	partsOf := id
	if revisionID != "" {
		partsOf = revisionID
	}
	parts, err := s.database.GetParts(partsOf)
	if err != nil {
		return nil, fmt.Errorf("fetching parts: %w", err)
	}

	return &BuildView{Build: b, Parts: parts, StagedRevisionID: revisionID}, nil
}

// GetPublicBuild returns a build as the public sees it: the PUBLISHED
// row untouched, regardless of any staged revision.
func (s *Service) GetPublicBuild(id string) (*BuildView, error) {
	b, err := s.database.GetPublicBuild(id)
	if err != nil {
		return nil, fmt.Errorf("fetching build: %w", err)
	}
	if b == nil {
		return nil, ErrNotFound
	}

	parts, err := s.database.GetParts(id)
	if err != nil {
		return nil, fmt.Errorf("fetching parts: %w", err)
	}

	return &BuildView{Build: b, Parts: parts}, nil
}

// ListBuilds returns an owner's builds newest-first, excluding staged
// revision rows.
func (s *Service) ListBuilds(ownerID string) ([]*model.Build, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("%w: owner required", ErrInvalidInput)
	}
	builds, err := s.database.ListBuildsForOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing builds: %w", err)
	}
	return builds, nil
}

// ModerationQueue returns PENDING_REVIEW builds oldest-first.
func (s *Service) ModerationQueue() ([]*model.Build, error) {
	builds, err := s.database.ListPendingReview()
	if err != nil {
		return nil, fmt.Errorf("listing moderation queue: %w", err)
	}
	return builds, nil
}

// UpdateBuild edits a build's content fields and, when replaceParts is
// true, wholesale-replaces its parts. A DRAFT, PENDING_REVIEW, or
// UNPUBLISHED build is mutated in place. A PUBLISHED build is never
// touched: the edit is transparently routed to its staged revision
// (created on first edit), and the returned build is that revision.
func (s *Service) UpdateBuild(ownerID, id string, content BuildContent, parts []*model.BuildPart, replaceParts bool) (*model.Build, error) {
	b, err := s.database.GetBuildForOwner(id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("fetching build: %w", err)
	}
	if b == nil {
		return nil, ErrNotFound
	}

	status, ok := ParseStatus(b.Status)
	if !ok {
		return nil, fmt.Errorf("build %s has unknown status %q", b.ID, b.Status)
	}

	target := b
	switch {
	case status.IsOwnerEditable():
		// In-place edit below.
	case status == StatusPublished:
		rev, err := s.stageRevision(b)
		if err != nil {
			return nil, err
		}
		target = rev
	default:
		// TEMP/SHARED rows are token-addressed, not owner-addressed.
		return nil, ErrNotFound
	}

	matched, err := s.database.UpdateBuildContent(
		target.ID, ownerID, OwnerEditableStatuses,
		content, NormalizeParts(target.ID, parts, s.idgen), replaceParts)
	if err != nil {
		return nil, fmt.Errorf("updating build: %w", err)
	}
	if !matched {
		// The row changed status or vanished between read and write.
		return nil, ErrNotFound
	}

	updated, err := s.database.GetBuildForOwner(target.ID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("re-reading build: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// applyContent copies content fields onto a build row.
func applyContent(b *model.Build, c BuildContent) {
	b.Title = c.Title
	b.Description = c.Description
	b.BuildVideoURL = c.BuildVideoURL
	b.FlightVideoURL = c.FlightVideoURL
	b.SourceAircraftID = c.SourceAircraftID
	b.ImageAssetID = c.ImageAssetID
}

// contentOf extracts the content fields of a build row.
func contentOf(b *model.Build) BuildContent {
	return BuildContent{
		Title:            b.Title,
		Description:      b.Description,
		BuildVideoURL:    b.BuildVideoURL,
		FlightVideoURL:   b.FlightVideoURL,
		SourceAircraftID: b.SourceAircraftID,
		ImageAssetID:     b.ImageAssetID,
	}
}

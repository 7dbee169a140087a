package hangar

import (
	"fmt"
	"strings"
)

// SubmitForReview moves an owner's DRAFT or UNPUBLISHED build into
// PENDING_REVIEW. Submission is not gated by publish validation; the
// gate runs when moderation publishes.
func (s *Service) SubmitForReview(ownerID, id string) error {
	matched, err := s.database.ChangeStatus(id, ownerID,
		[]Status{StatusDraft, StatusUnpublished}, StatusPendingReview, "")
	if err != nil {
		return fmt.Errorf("submitting build: %w", err)
	}
	if !matched {
		return ErrNotFound
	}
	s.logger.Info("build submitted for review", "build", id, "owner", ownerID)
	return nil
}

// Approve publishes a PENDING_REVIEW build. If the row is a staged
// revision, its content and parts are merged into the published
// counterpart (whose id is preserved) and the revision row is deleted;
// otherwise the row itself becomes PUBLISHED.
//
// A non-nil ValidationResult means the publish gate failed; no state
// was changed.
func (s *Service) Approve(id string) (*ValidationResult, error) {
	b, err := s.database.GetBuild(id)
	if err != nil {
		return nil, fmt.Errorf("fetching build: %w", err)
	}
	if b == nil || Status(b.Status) != StatusPendingReview {
		return nil, ErrNotFound
	}

	res, err := s.publishGate(b)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return res, nil
	}

	if b.RevisionOfBuildID != "" {
		matched, err := s.database.MergeRevision(b.ID, b.RevisionOfBuildID)
		if err != nil {
			return nil, fmt.Errorf("merging revision: %w", err)
		}
		if !matched {
			// The published counterpart vanished or was unpublished.
			return nil, ErrNotFound
		}
		s.logger.Info("revision approved and merged", "revision", b.ID, "build", b.RevisionOfBuildID)
		return nil, nil
	}

	matched, err := s.database.ChangeStatus(id, "", []Status{StatusPendingReview}, StatusPublished, "")
	if err != nil {
		return nil, fmt.Errorf("approving build: %w", err)
	}
	if !matched {
		return nil, ErrNotFound
	}
	s.logger.Info("build approved", "build", id)
	return nil, nil
}

// Publish lets a moderator publish directly from DRAFT, UNPUBLISHED, or
// PENDING_REVIEW, skipping the submit step. The same validation gate
// applies. A staged revision in PENDING_REVIEW merges as in Approve.
func (s *Service) Publish(id string) (*ValidationResult, error) {
	b, err := s.database.GetBuild(id)
	if err != nil {
		return nil, fmt.Errorf("fetching build: %w", err)
	}
	if b == nil {
		return nil, ErrNotFound
	}
	status := Status(b.Status)
	if status != StatusDraft && status != StatusUnpublished && status != StatusPendingReview {
		return nil, ErrNotFound
	}

	res, err := s.publishGate(b)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return res, nil
	}

	if b.RevisionOfBuildID != "" {
		matched, err := s.database.MergeRevision(b.ID, b.RevisionOfBuildID)
		if err != nil {
			return nil, fmt.Errorf("merging revision: %w", err)
		}
		if !matched {
			return nil, ErrNotFound
		}
		s.logger.Info("revision published and merged", "revision", b.ID, "build", b.RevisionOfBuildID)
		return nil, nil
	}

	matched, err := s.database.ChangeStatus(id, "",
		[]Status{StatusDraft, StatusUnpublished, StatusPendingReview}, StatusPublished, "")
	if err != nil {
		return nil, fmt.Errorf("publishing build: %w", err)
	}
	if !matched {
		return nil, ErrNotFound
	}
	s.logger.Info("build published", "build", id)
	return nil, nil
}

// Decline moves a PENDING_REVIEW or PUBLISHED build to UNPUBLISHED with
// a mandatory moderation reason.
func (s *Service) Decline(id, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: decline requires a moderation reason", ErrInvalidInput)
	}
	matched, err := s.database.ChangeStatus(id, "",
		[]Status{StatusPendingReview, StatusPublished}, StatusUnpublished, reason)
	if err != nil {
		return fmt.Errorf("declining build: %w", err)
	}
	if !matched {
		return ErrNotFound
	}
	s.logger.Info("build declined", "build", id)
	return nil
}

// Unpublish retires a PUBLISHED or PENDING_REVIEW build. The reason is
// optional.
func (s *Service) Unpublish(id, reason string) error {
	matched, err := s.database.ChangeStatus(id, "",
		[]Status{StatusPublished, StatusPendingReview}, StatusUnpublished, reason)
	if err != nil {
		return fmt.Errorf("unpublishing build: %w", err)
	}
	if !matched {
		return ErrNotFound
	}
	s.logger.Info("build unpublished", "build", id)
	return nil
}

// DeleteBuild deletes an owner's DRAFT or UNPUBLISHED build along with
// its parts and reactions. PUBLISHED and PENDING_REVIEW builds must be
// unpublished first. The build's image asset, if any, is removed from
// the asset store after the row is gone.
func (s *Service) DeleteBuild(ownerID, id string) error {
	b, err := s.database.GetBuildForOwner(id, ownerID)
	if err != nil {
		return fmt.Errorf("fetching build: %w", err)
	}
	if b == nil {
		return ErrNotFound
	}

	status := Status(b.Status)
	if status == StatusPublished || status == StatusPendingReview {
		return ErrMustUnpublish
	}
	if !status.IsDeletableByOwner() {
		return ErrNotFound
	}

	matched, err := s.database.DeleteBuild(id, ownerID, []Status{StatusDraft, StatusUnpublished})
	if err != nil {
		return fmt.Errorf("deleting build: %w", err)
	}
	if !matched {
		return ErrNotFound
	}

	if b.ImageAssetID != "" {
		// The row is already gone; a failed asset delete only leaves an
		// orphan in the external store.
		if err := s.assets.DeleteAsset(b.ImageAssetID); err != nil {
			s.logger.Warn("deleting image asset failed", "asset", b.ImageAssetID, "error", err)
		}
	}

	s.logger.Info("build deleted", "build", id, "owner", ownerID)
	return nil
}

package hangar

import (
	"fmt"
	"strings"
)

// ReactionSummary is the aggregate view of a build's reactions plus the
// viewer's own, if any. Counts are computed fresh from stored rows on
// every read.
type ReactionSummary struct {
	Likes    int64
	Dislikes int64
	Mine     string // ReactionLike, ReactionDislike, or ""
}

// SetReaction upserts a user's reaction on a PUBLISHED build. Setting a
// reaction when one exists for the pair overwrites it. A build that is
// not PUBLISHED matches zero rows and reads as not found.
func (s *Service) SetReaction(userID, buildID, value string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(buildID) == "" {
		return fmt.Errorf("%w: user and build required", ErrInvalidInput)
	}
	if !ValidReaction(value) {
		return fmt.Errorf("%w: unrecognized reaction %q", ErrInvalidInput, value)
	}

	matched, err := s.database.UpsertReaction(buildID, userID, value, s.clock.Now())
	if err != nil {
		return fmt.Errorf("setting reaction: %w", err)
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

// ClearReaction removes a user's reaction from a PUBLISHED build if one
// exists. Clearing on a non-PUBLISHED build reads as not found.
func (s *Service) ClearReaction(userID, buildID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(buildID) == "" {
		return fmt.Errorf("%w: user and build required", ErrInvalidInput)
	}

	matched, err := s.database.ClearReaction(buildID, userID)
	if err != nil {
		return fmt.Errorf("clearing reaction: %w", err)
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

// GetReactions returns fresh like/dislike counts for a build and the
// viewer's own reaction. viewerID may be empty for anonymous readers.
func (s *Service) GetReactions(buildID, viewerID string) (*ReactionSummary, error) {
	if strings.TrimSpace(buildID) == "" {
		return nil, fmt.Errorf("%w: build required", ErrInvalidInput)
	}

	likes, dislikes, err := s.database.CountReactions(buildID)
	if err != nil {
		return nil, fmt.Errorf("counting reactions: %w", err)
	}

	summary := &ReactionSummary{Likes: likes, Dislikes: dislikes}
	if viewerID != "" {
		mine, err := s.database.GetReaction(buildID, viewerID)
		if err != nil {
			return nil, fmt.Errorf("fetching viewer reaction: %w", err)
		}
		summary.Mine = mine
	}
	return summary, nil
}

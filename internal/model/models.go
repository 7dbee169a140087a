package model

import "time"

// Build is the central entity: a user-assembled parts list with a
// publication status. Anonymous temp builds have no owner.
type Build struct {
	ID          string // UUID
	OwnerUserID string // empty for anonymous temp/shared builds

	Status string // one of the hangar.Status values

	// RevisionOfBuildID links a staged draft to the PUBLISHED build it
	// holds pending edits for. Empty for ordinary builds.
	RevisionOfBuildID string

	Title            string
	Description      string
	BuildVideoURL    string
	FlightVideoURL   string
	SourceAircraftID string
	ImageAssetID     string
	ModerationReason string

	// Token is the secret share token. Set only for TEMP/SHARED rows.
	Token string

	// ExpiresAt is meaningful only while Status is TEMP.
	ExpiresAt *time.Time

	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt *time.Time
}

// BuildPart is one equipment slot on a build. Parts are owned by their
// build and replaced wholesale, never patched field-by-field.
type BuildPart struct {
	ID            string // UUID
	BuildID       string
	GearType      string // category key: "frame", "motor", ...
	CatalogItemID string
	Position      int // ordering within the same gear type, >= 0
	Notes         string
}

// BuildReaction is a single user's reaction to a published build.
// (BuildID, UserID) is unique.
type BuildReaction struct {
	ID        string // UUID
	BuildID   string
	UserID    string
	Value     string // hangar.ReactionLike or hangar.ReactionDislike
	UpdatedAt time.Time
}

// CatalogItem is display metadata for a catalog reference on a part.
// The catalog itself is an external collaborator.
type CatalogItem struct {
	ID                string
	Brand             string
	Model             string
	PriceCents        int64
	ImageURL          string
	PublicationStatus string // "PUBLISHED" gates the publish validator
}

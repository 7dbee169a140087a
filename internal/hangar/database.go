package hangar

import (
	"time"

	"hangar/internal/model"
)

// BuildContent groups the owner-editable content fields of a build.
type BuildContent struct {
	Title            string
	Description      string
	BuildVideoURL    string
	FlightVideoURL   string
	SourceAircraftID string
	ImageAssetID     string
}

// Database provides an interface for build storage operations.
// Every multi-statement method runs inside a single transaction with
// rollback on error; partial application is never observable.
//
// Lookup methods return (nil, nil) when no row matches — absence is not
// an error at this layer. Conditional mutations return false when zero
// rows matched (wrong id, wrong owner, or wrong current status); the
// service layer maps that to ErrNotFound.
type Database interface {
	// Build lookups

	// GetBuild returns a build by id regardless of owner or status.
	// Used by moderation, which is not owner-scoped.
	GetBuild(id string) (*model.Build, error)

	// GetBuildForOwner returns a build only if it belongs to ownerID.
	GetBuildForOwner(id, ownerID string) (*model.Build, error)

	// GetOwnerView returns the owner's presentation of a build: for a
	// PUBLISHED build with an open staged revision, the returned row
	// carries the published id and status but the revision's content
	// fields, and revisionID names the revision row the parts should be
	// read from. Otherwise the row is returned untouched and revisionID
	// is empty.
	GetOwnerView(id, ownerID string) (build *model.Build, revisionID string, err error)

	// GetPublicBuild returns a build only while it is PUBLISHED.
	GetPublicBuild(id string) (*model.Build, error)

	// ListBuildsForOwner returns an owner's builds newest-first,
	// excluding staged revision rows.
	ListBuildsForOwner(ownerID string) ([]*model.Build, error)

	// ListPendingReview returns the moderation queue oldest-first.
	ListPendingReview() ([]*model.Build, error)

	// Build mutations

	// CreateBuild inserts a build and its parts in one transaction.
	CreateBuild(b *model.Build, parts []*model.BuildPart) error

	// UpdateBuildContent updates content fields (and, when replaceParts
	// is true, wholesale-replaces parts) of a build owned by ownerID
	// whose status is in from. Returns false if zero rows matched.
	UpdateBuildContent(id, ownerID string, from []Status, content BuildContent, parts []*model.BuildPart, replaceParts bool) (bool, error)

	// ChangeStatus conditionally moves a build from one of the given
	// statuses to another. ownerID empty means any owner (moderation).
	// Side effects follow the target status: PUBLISHED sets publishedAt
	// and clears moderationReason and expiresAt; any transition away
	// from PUBLISHED clears publishedAt; UNPUBLISHED records the given
	// moderationReason. Returns false if zero rows matched.
	ChangeStatus(id, ownerID string, from []Status, to Status, moderationReason string) (bool, error)

	// DeleteBuild deletes a build (with its parts and reactions) owned
	// by ownerID whose status is in from. Returns false on zero rows.
	DeleteBuild(id, ownerID string, from []Status) (bool, error)

	// Revision staging

	// FindOpenRevision returns the most-recently-updated non-terminal
	// revision of publishedID for ownerID, or nil.
	FindOpenRevision(ownerID, publishedID string) (*model.Build, error)

	// CreateRevision inserts a staged revision row and its parts.
	// Returns ErrDuplicateRevision if the open-revision uniqueness
	// invariant is violated by a concurrent insert.
	CreateRevision(rev *model.Build, parts []*model.BuildPart) error

	// MergeRevision copies the revision's content fields into its
	// published counterpart (clearing moderationReason and bumping
	// updatedAt), replaces the published row's parts with the
	// revision's, and deletes the revision row — all in one
	// transaction. Returns false if the published row vanished or is no
	// longer PUBLISHED.
	MergeRevision(revisionID, publishedID string) (bool, error)

	// Temp/shared links

	// GetBuildByToken returns the build at a share token: a TEMP row
	// whose expiry is unset or after now, or a SHARED row
	// unconditionally.
	GetBuildByToken(token string, now time.Time) (*model.Build, error)

	// PromoteTemp converts the TEMP row at token to SHARED in place,
	// clearing its expiry. Promoting an already-SHARED row is a no-op
	// success. Returns nil if no live row exists at the token.
	PromoteTemp(token string, now time.Time) (*model.Build, error)

	// SweepExpiredTemp deletes every TEMP row with expiresAt at or
	// before cutoff and returns the number deleted. Rows in any other
	// status are never touched, whatever their expiry.
	SweepExpiredTemp(cutoff time.Time) (int64, error)

	// Parts

	// GetParts returns a build's parts ordered by gear type and position.
	GetParts(buildID string) ([]*model.BuildPart, error)

	// Reactions

	// UpsertReaction sets a user's reaction on a PUBLISHED build,
	// overwriting any previous value. Returns false if the build is not
	// PUBLISHED.
	UpsertReaction(buildID, userID, value string, now time.Time) (bool, error)

	// ClearReaction removes a user's reaction from a PUBLISHED build.
	// Returns false if the build is not PUBLISHED.
	ClearReaction(buildID, userID string) (bool, error)

	// CountReactions computes fresh like/dislike counts for a build.
	CountReactions(buildID string) (likes, dislikes int64, err error)

	// GetReaction returns a user's reaction value, or "" if none.
	GetReaction(buildID, userID string) (string, error)

	// CheckMigrations verifies the schema is at the latest version.
	CheckMigrations() error

	// Close closes the database connection.
	Close() error
}

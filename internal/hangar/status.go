package hangar

// Status is a build's position in the publication lifecycle.
type Status string

const (
	// StatusTemp is an anonymous, token-addressed build with a TTL.
	StatusTemp Status = "TEMP"
	// StatusShared is a permanent read-only snapshot promoted from TEMP.
	StatusShared Status = "SHARED"
	// StatusDraft is an owned build not yet submitted for review.
	StatusDraft Status = "DRAFT"
	// StatusPendingReview is awaiting a moderation decision.
	StatusPendingReview Status = "PENDING_REVIEW"
	// StatusPublished is publicly visible.
	StatusPublished Status = "PUBLISHED"
	// StatusUnpublished was retired by moderation (declined or pulled).
	StatusUnpublished Status = "UNPUBLISHED"
)

// AllStatuses lists every legal status value.
var AllStatuses = []Status{
	StatusTemp,
	StatusShared,
	StatusDraft,
	StatusPendingReview,
	StatusPublished,
	StatusUnpublished,
}

// ParseStatus converts a stored string into a Status.
func ParseStatus(s string) (Status, bool) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// OwnerEditableStatuses are the statuses an owner may mutate in place.
// Editing a PUBLISHED build instead routes through revision staging.
var OwnerEditableStatuses = []Status{StatusDraft, StatusPendingReview, StatusUnpublished}

// RevisionOpenStatuses are the non-terminal statuses a staged revision
// can hold. At most one revision per (owner, published build) may be in
// any of these at a time.
var RevisionOpenStatuses = []Status{StatusDraft, StatusPendingReview, StatusUnpublished}

// IsOwnerEditable reports whether an owner may mutate the row in place.
func (s Status) IsOwnerEditable() bool {
	return s == StatusDraft || s == StatusPendingReview || s == StatusUnpublished
}

// IsPubliclyVisible reports whether non-owners may see the build.
func (s Status) IsPubliclyVisible() bool {
	return s == StatusPublished
}

// IsTokenAddressed reports whether the build is fetched by secret token
// rather than by owner.
func (s Status) IsTokenAddressed() bool {
	return s == StatusTemp || s == StatusShared
}

// IsDeletableByOwner reports whether an owner may delete the row
// outright. PUBLISHED and PENDING_REVIEW must be unpublished first;
// TEMP/SHARED rows have no owner and are not deleted through this path.
func (s Status) IsDeletableByOwner() bool {
	return s == StatusDraft || s == StatusUnpublished
}

// Reaction values.
const (
	ReactionLike    = "LIKE"
	ReactionDislike = "DISLIKE"
)

// ValidReaction reports whether v is a recognized reaction value.
func ValidReaction(v string) bool {
	return v == ReactionLike || v == ReactionDislike
}

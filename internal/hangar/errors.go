package hangar

import "errors"

// ErrNotFound covers absent rows, wrong-owner access, and
// status-mismatched operations alike. The three cases are intentionally
// indistinguishable so callers cannot probe existence or ownership.
var ErrNotFound = errors.New("build not found")

// ErrInvalidInput marks a caller-supplied bad argument. It is returned
// before any store access.
var ErrInvalidInput = errors.New("invalid input")

// ErrMustUnpublish is returned when deleting a PUBLISHED or
// PENDING_REVIEW build; those must be unpublished before deletion.
var ErrMustUnpublish = errors.New("build must be unpublished before deletion")

// ErrSharedReadOnly is returned when editing a SHARED build.
var ErrSharedReadOnly = errors.New("shared build is read-only")

// ErrDuplicateRevision is returned by Database.CreateRevision when the
// open-revision uniqueness invariant rejects the insert because a
// concurrent request created the revision first. Callers recover by
// re-reading the winner's row; this is the one store conflict with a
// defined recovery path.
var ErrDuplicateRevision = errors.New("open revision already exists")

// ValidationError is one structural problem found by the publish gate.
type ValidationError struct {
	Category string // gear type or content field, e.g. "motor", "description"
	Code     string // e.g. "missing_required", "item_not_published"
}

// Validation codes.
const (
	CodeMissingRequired  = "missing_required"
	CodeUnknownItem      = "unknown_item"
	CodeItemNotPublished = "item_not_published"
)

// ValidationResult is the multi-error outcome of the publish gate. It is
// returned as a value, never thrown: a failed gate leaves all state
// untouched.
type ValidationResult struct {
	Errors []ValidationError
}

// OK reports whether the gate passed.
func (r *ValidationResult) OK() bool {
	return r == nil || len(r.Errors) == 0
}

func (r *ValidationResult) add(category, code string) {
	r.Errors = append(r.Errors, ValidationError{Category: category, Code: code})
}

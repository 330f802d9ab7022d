package review

import "errors"

var (
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrCommentTooShort   = errors.New("comment is shorter than minimum length")
	ErrCommentTooLong    = errors.New("comment exceeds maximum length")
	ErrTooManyImages     = errors.New("too many image references")
	ErrEmptyImageRef     = errors.New("image reference cannot be empty")
	ErrInvalidStatus     = errors.New("invalid review status")
	ErrInvalidTransition = errors.New("invalid moderation transition")
)

// Status is the canonical moderation state. Counted/visible flags are
// derived from it and never stored independently.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"
)

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPublished, StatusRejected:
		return true
	default:
		return false
	}
}

// Counted reports whether a review in this state contributes to the
// public aggregate rating.
func (s Status) Counted() bool {
	return s == StatusPublished
}

// Visible reports whether a review in this state may be shown to its
// author with a status label (rejected reviews stay visible to the
// author, never to the public).
func (s Status) Visible() bool {
	return s != StatusRejected
}

// Label is the customer-facing state name used in listings.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Under Review"
	case StatusPublished:
		return "Published"
	case StatusRejected:
		return "Rejected"
	default:
		return string(s)
	}
}

package review

import (
	"strings"
	"unicode/utf8"
)

const (
	MinCommentLength = 10
	MaxCommentLength = 500
	MaxImages        = 5
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	// Bounds count characters, not bytes, so multibyte comments are not
	// penalized.
	n := utf8.RuneCountInString(t)
	if n < MinCommentLength {
		return Comment{}, ErrCommentTooShort
	}
	if n > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

// Images is an ordered list of storage references attached to a review.
type Images struct {
	refs []string
}

func NewImages(refs []string) (Images, error) {
	if len(refs) > MaxImages {
		return Images{}, ErrTooManyImages
	}
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			return Images{}, ErrEmptyImageRef
		}
		out = append(out, ref)
	}
	return Images{refs: out}, nil
}

func (i Images) Values() []string { return i.refs }

// ReconstructImages restores refs already validated at write time.
func ReconstructImages(refs []string) Images {
	return Images{refs: refs}
}

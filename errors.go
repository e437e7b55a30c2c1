package scrollkit

import "errors"

// Validation errors reported by New and Instance.Calculate. All of them are
// raised synchronously during descriptor resolution and wrapped with
// context; match with errors.Is. The per-frame tick path never produces
// errors: it only ever sees descriptors that already resolved.
var (
	// ErrMissingField indicates a descriptor without a from or to boundary.
	ErrMissingField = errors.New("scrollkit: missing range boundary")

	// ErrInvalidRange indicates an unusable scroll range: a relative
	// boundary with no anchor element to resolve against, or a degenerate
	// range whose boundaries resolve to the same offset.
	ErrInvalidRange = errors.New("scrollkit: invalid animation range")

	// ErrInvalidPropertyRange indicates a property boundary that is not an
	// absolute value. Relative boundaries are only valid on the outer
	// scroll range.
	ErrInvalidPropertyRange = errors.New("scrollkit: invalid property range")

	// ErrUnknownTiming indicates a timing name with no entry in the easing
	// table.
	ErrUnknownTiming = errors.New("scrollkit: unknown timing name")

	// ErrParse indicates a boundary expression that could not be parsed.
	ErrParse = errors.New("scrollkit: cannot parse boundary")
)

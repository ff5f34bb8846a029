package interpolate

import (
	"errors"
)

// Errors returned by grid and interpolator construction and by evaluation.
// Construction is all-or-nothing: a constructor which returns an error
// returns no partially built value. Evaluation never produces a partial
// result alongside an error.
var (
	// ErrShapeMismatch is returned when a value array's length does not
	// match the product of the axis lengths times the channel count.
	ErrShapeMismatch = errors.New("value array shape does not match axes")

	// ErrInsufficientKnots is returned when an axis has fewer knots than
	// its kernel needs.
	ErrInsufficientKnots = errors.New("axis has too few knots for kernel")

	// ErrOutOfDomain is returned when a query coordinate falls outside
	// the knot range of an axis whose boundary rule is Reject.
	ErrOutOfDomain = errors.New("coordinate outside axis knot range")

	// ErrNonPositiveLogValue is returned when a log-space kernel needs a
	// sample which is zero or negative.
	ErrNonPositiveLogValue = errors.New("non-positive value under log kernel")
)

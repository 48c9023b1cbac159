package domain

import "github.com/pkg/errors"

var (
	// ErrNegativeDimension is returned when either side of a rectangle is below zero.
	ErrNegativeDimension = errors.New("dimensions must be nonnegative")

	// ErrOverflow is returned when an area does not fit in the Area type.
	ErrOverflow = errors.New("area overflows int32")

	// ErrMalformedInput is returned when a dimension token is missing, not an
	// integer, or outside the Dimension range.
	ErrMalformedInput = errors.New("malformed dimension")
)

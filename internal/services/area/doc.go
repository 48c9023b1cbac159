// Package area computes rectangle areas.
//
// Area is the raw product and wraps like any int32 multiplication. Service
// adds the checks the calculator relies on: both sides must be nonnegative and
// the mathematical product must fit in an int32.
package area

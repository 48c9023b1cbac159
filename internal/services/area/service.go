package area

import (
	"math"

	"github.com/pkg/errors"

	"rectarea/internal/domain"
)

// Area returns width * height. Both sides must be nonnegative; the result
// wraps if the product does not fit.
func Area(width, height domain.Dimension) domain.Area {
	return domain.Area(width * height)
}

// Service validates rectangles and computes their area without overflow.
type Service struct{}

// New returns an area service.
func New() *Service { return &Service{} }

// Compute returns the area of r, or ErrNegativeDimension / ErrOverflow wrapped
// with the offending operands.
func (s *Service) Compute(r domain.Rectangle) (domain.Area, error) {
	if r.Width < 0 || r.Height < 0 {
		return 0, errors.Wrapf(domain.ErrNegativeDimension, "%d by %d", r.Width, r.Height)
	}
	if !fitsArea(int64(r.Width) * int64(r.Height)) {
		return 0, errors.Wrapf(domain.ErrOverflow, "%d * %d", r.Width, r.Height)
	}
	return Area(r.Width, r.Height), nil
}

// fitsArea reports whether p is representable as a domain.Area. The product of
// two int32 values always fits in an int64, so the widened product is exact.
func fitsArea(p int64) bool {
	return p >= math.MinInt32 && p <= math.MaxInt32
}

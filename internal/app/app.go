package app

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"rectarea/internal/ctxlog"
	"rectarea/internal/domain"
)

// User-facing text. These strings are part of the program's output contract.
const (
	WidthPrompt              = "Enter width: "
	HeightPrompt             = "Enter height: "
	NegativeDimensionMessage = "Both dimensions must be nonnegative integers. Please try again."
	OverflowMessage          = "ERROR: Computed area resulted in an integer overflow."
	resultFormat             = "Area of a %d by %d rectangle is: %d\n"
)

type App struct {
	Dimensions domain.DimensionReader
	Areas      domain.AreaService
	out        io.Writer
}

func New(dims domain.DimensionReader, areas domain.AreaService, out io.Writer) *App {
	return &App{
		Dimensions: dims,
		Areas:      areas,
		out:        out,
	}
}

// FromConfig builds the wire for cfg and returns an App using it.
func FromConfig(cfg Config) *App {
	w := NewWire(cfg)
	return New(w.Dimensions, w.Areas, w.Out)
}

// Run reads width and height, then prints their area or the matching error
// line. Input and arithmetic failures come back as *ExitError; I/O and
// context errors are returned unchanged.
func (a *App) Run(ctx context.Context) error {
	log := ctxlog.FromContext(ctx)

	width, err := a.Dimensions.ReadDimension(ctx, WidthPrompt)
	if err != nil {
		return a.fail(ctx, err)
	}
	height, err := a.Dimensions.ReadDimension(ctx, HeightPrompt)
	if err != nil {
		return a.fail(ctx, err)
	}
	log.Debug("dimensions read", "width", width, "height", height)

	area, err := a.Areas.Compute(domain.Rectangle{Width: width, Height: height})
	if err != nil {
		return a.fail(ctx, err)
	}
	log.Debug("area computed", "area", area)

	_, err = fmt.Fprintf(a.out, resultFormat, width, height, area)
	return errors.Wrap(err, "write result")
}

// fail prints the user line for cause and converts it to an *ExitError.
func (a *App) fail(ctx context.Context, cause error) error {
	var msg string
	switch {
	case errors.Is(cause, domain.ErrOverflow):
		msg = OverflowMessage
	case errors.Is(cause, domain.ErrNegativeDimension),
		errors.Is(cause, domain.ErrMalformedInput):
		msg = NegativeDimensionMessage
	default:
		return cause
	}

	ctxlog.FromContext(ctx).Debug("input rejected", "err", cause)
	if _, err := fmt.Fprintln(a.out, msg); err != nil {
		return errors.Wrap(err, "write error line")
	}
	return &ExitError{Code: 1, Err: cause}
}

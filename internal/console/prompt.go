package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"rectarea/internal/domain"
)

// Prompter implements domain.DimensionReader over a reader/writer pair.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading from in and prompting on out.
// The reader is buffered once so that consecutive reads never lose input
// between tokens.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Prompter{in: br, out: out}
}

// ReadDimension writes prompt and parses the next whitespace-delimited token
// as a base-10 int32. An optional sign is allowed; leading zeros do not change
// the base and prefixes such as 0x or digit separators are rejected.
func (p *Prompter) ReadDimension(ctx context.Context, prompt string) (domain.Dimension, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return 0, errors.Wrap(err, "write prompt")
	}

	var tok string
	if _, err := fmt.Fscan(p.in, &tok); err != nil {
		return 0, errors.Wrapf(domain.ErrMalformedInput, "%v", err)
	}
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(domain.ErrMalformedInput, "%v", err)
	}
	return domain.Dimension(v), nil
}

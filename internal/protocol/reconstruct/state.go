// Package reconstruct runs one recovery: decode every share, pick the k
// points with the smallest x, interpolate at zero and optionally check the
// remaining shares.
package reconstruct

import (
	"context"
	"fmt"

	"github.com/smallyu/go-shamir-recover/internal/crypto/curves"
	"github.com/smallyu/go-shamir-recover/internal/logging"
	"github.com/smallyu/go-shamir-recover/pkg/sss"
)

// Options tunes a reconstruction. The zero value recovers an exact integer
// secret without logging.
type Options struct {
	// Field, when set, makes the interpolation run modulo the field order.
	Field curves.Field

	// Verify checks every share beyond the first k against the polynomial.
	Verify bool

	// Logger receives progress messages. Nil means no logging.
	Logger logging.Logger

	// Reveal logs the secret in clear instead of redacting it.
	Reveal bool
}

type step int

const (
	stepDecode step = iota + 1
	stepSelect
	stepInterpolate
	stepVerify
	stepDone
)

var stepNames = map[step]string{
	stepDecode:      "decode",
	stepSelect:      "select",
	stepInterpolate: "interpolate",
	stepVerify:      "verify",
	stepDone:        "done",
}

type state struct {
	inst *sss.Instance
	opts Options
	log  logging.Logger

	step step

	// all decoded points, in share index order
	points []sss.Point
	// the k points used for interpolation and the rest
	selected []sss.Point
	extras   []sss.Point

	result *sss.Result
}

// Run recovers the secret of inst. On error no partial result is returned.
func Run(ctx context.Context, inst *sss.Instance, opts Options) (*sss.Result, error) {
	if inst == nil {
		return nil, fmt.Errorf("%w: nil instance", sss.ErrMalformedInput)
	}

	s := &state{
		inst: inst,
		opts: opts,
		log:  opts.Logger,
		step: stepDecode,
	}
	if s.log == nil {
		s.log = logging.Nop()
	}

	for s.step != stepDone {
		if err := s.next(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", s.Details(), err)
		}
	}
	return s.result, nil
}

func (s *state) next(ctx context.Context) error {
	switch s.step {
	case stepDecode:
		return s.decode(ctx)
	case stepSelect:
		return s.selectPoints(ctx)
	case stepInterpolate:
		return s.interpolate(ctx)
	case stepVerify:
		return s.verify(ctx)
	default:
		return fmt.Errorf("unknown step %d", s.step)
	}
}

// Details returns the current step, e.g. "reconstruct step 2 (select)".
func (s *state) Details() string {
	return fmt.Sprintf("reconstruct step %d (%s)", s.step, stepNames[s.step])
}

package reconstruct

import (
	"context"
	"fmt"
	"math/big"

	"github.com/smallyu/go-shamir-recover/internal/crypto/polynomial"
	"github.com/smallyu/go-shamir-recover/internal/crypto/radix"
	"github.com/smallyu/go-shamir-recover/internal/logging"
	"github.com/smallyu/go-shamir-recover/internal/protocol/identify"
	"github.com/smallyu/go-shamir-recover/pkg/sss"
)

func (s *state) decode(ctx context.Context) error {
	s.log.Info(ctx, "instance loaded",
		"n", s.inst.N,
		"k", s.inst.K,
		"degree", s.inst.Degree(),
		"shares", len(s.inst.Shares),
	)
	if s.inst.N != len(s.inst.Shares) {
		s.log.Warn(ctx, "declared share count differs from shares present",
			"n", s.inst.N,
			"shares", len(s.inst.Shares),
		)
	}

	shares := s.inst.SortedShares()
	s.points = make([]sss.Point, 0, len(shares))

	for _, sh := range shares {
		y, err := radix.Decode(sh.Value, sh.Base)
		if err != nil {
			return sss.NewBlame(sh.Index, "decode value", err)
		}
		s.log.Debug(ctx, "share decoded",
			"index", sh.Index,
			"base", sh.Base,
			"digits", len(sh.Value),
			"bits", y.BitLen(),
		)
		s.points = append(s.points, sss.NewPoint(sh.Index, y))
	}

	s.step = stepSelect
	return nil
}

func (s *state) selectPoints(ctx context.Context) error {
	s.log.Info(ctx, "selecting points", "available", len(s.points), "k", s.inst.K)

	selected, err := polynomial.Select(s.points, s.inst.K)
	if err != nil {
		return err
	}
	s.selected = selected

	// Select sorts by x and rejects duplicates, so everything with a larger
	// x than the last selected point is an extra.
	last := selected[len(selected)-1].X
	for _, p := range s.points {
		if p.X.Cmp(last) > 0 {
			s.extras = append(s.extras, p)
		}
	}

	s.step = stepInterpolate
	return nil
}

func (s *state) interpolate(ctx context.Context) error {
	secret, err := s.secret()
	if err != nil {
		return err
	}

	field := ""
	if s.opts.Field != nil {
		field = s.opts.Field.Name()
	}

	s.result = &sss.Result{
		Secret:     secret,
		PointsUsed: s.selected,
		Field:      field,
	}
	s.log.Info(ctx, "secret reconstructed",
		logging.Secret("secret", secret, s.opts.Reveal),
		"points", len(s.selected),
		"field", field,
	)

	s.step = stepVerify
	return nil
}

func (s *state) secret() (*big.Int, error) {
	if s.opts.Field != nil {
		return polynomial.InterpolateAtMod(s.selected, new(big.Int), s.opts.Field)
	}
	return polynomial.Secret(s.selected)
}

func (s *state) verify(ctx context.Context) error {
	if !s.opts.Verify {
		s.step = stepDone
		return nil
	}

	if err := identify.Check(s.selected, s.extras, s.opts.Field); err != nil {
		s.log.Error(ctx, "inconsistent shares", "blamed", fmt.Sprint(identify.Blamed(err)))
		return err
	}
	s.result.Verified = len(s.extras)
	s.log.Info(ctx, "shares verified", "count", len(s.extras))

	s.step = stepDone
	return nil
}

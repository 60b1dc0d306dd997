// Package identify finds shares that do not lie on the polynomial
// recovered from the first k shares.
package identify

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/smallyu/go-shamir-recover/internal/crypto/curves"
	"github.com/smallyu/go-shamir-recover/internal/crypto/polynomial"
	"github.com/smallyu/go-shamir-recover/pkg/sss"
)

// Check evaluates the polynomial through selected at the x of every point
// in extras and compares the result with the point's y. If field is non-nil
// the comparison happens modulo the field order.
//
// Every mismatching point produces a *sss.Blame wrapping
// sss.ErrInconsistentShares; all of them are joined into the returned error.
func Check(selected, extras []sss.Point, field curves.Field) error {
	var errs []error

	for _, p := range extras {
		ok, err := onPolynomial(selected, p, field)
		if err != nil {
			return err
		}
		if !ok {
			errs = append(errs, sss.NewBlame(p.X.Int64(), "not on the interpolated polynomial", sss.ErrInconsistentShares))
		}
	}

	return errors.Join(errs...)
}

func onPolynomial(selected []sss.Point, p sss.Point, field curves.Field) (bool, error) {
	if field != nil {
		v, err := polynomial.InterpolateAtMod(selected, p.X, field)
		if err != nil {
			return false, fmt.Errorf("identify: %w", err)
		}
		return v.Cmp(new(big.Int).Mod(p.Y, field.Order())) == 0, nil
	}

	r, err := polynomial.InterpolateAt(selected, p.X)
	if err != nil {
		return false, fmt.Errorf("identify: %w", err)
	}
	return r.IsInt() && r.Num().Cmp(p.Y) == 0, nil
}

// Blamed returns the indices of all shares blamed in err, in order.
func Blamed(err error) []int64 {
	var out []int64
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if b, ok := e.(*sss.Blame); ok {
			out = append(out, b.Index)
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)
	return out
}

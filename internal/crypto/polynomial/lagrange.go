package polynomial

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/smallyu/go-shamir-recover/internal/crypto/curves"
	"github.com/smallyu/go-shamir-recover/pkg/sss"
)

// Select returns the k points with the smallest x. The input is not
// modified. Two points sharing an x are rejected even if only one of them
// would be selected.
func Select(points []sss.Point, k int) ([]sss.Point, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: threshold k=%d", sss.ErrMalformedInput, k)
	}
	if len(points) < k {
		return nil, fmt.Errorf("%w: need %d, got %d", sss.ErrInsufficientPoints, k, len(points))
	}

	sorted := make([]sss.Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X.Cmp(sorted[j].X) < 0 })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].X.Cmp(sorted[i-1].X) == 0 {
			return nil, fmt.Errorf("%w: x=%s", sss.ErrDuplicateAbscissa, sorted[i].X)
		}
	}

	return sorted[:k], nil
}

// InterpolateAt evaluates the unique polynomial of degree len(points)-1
// through points at x, as an exact rational:
//
//	f(x) = Σ_i y_i * Π_{j!=i} (x - x_j) / (x_i - x_j)
//
// Each term is kept as a reduced fraction and only the final sum is looked
// at by callers, so no division is ever truncated.
func InterpolateAt(points []sss.Point, x *big.Int) (*big.Rat, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points", sss.ErrInsufficientPoints)
	}

	sum := new(big.Rat)
	diff := new(big.Int)

	for i, pi := range points {
		num := new(big.Int).Set(pi.Y)
		den := big.NewInt(1)

		for j, pj := range points {
			if i == j {
				continue
			}
			diff.Sub(pi.X, pj.X)
			if diff.Sign() == 0 {
				return nil, fmt.Errorf("%w: x=%s", sss.ErrDuplicateAbscissa, pi.X)
			}
			den.Mul(den, diff)

			diff.Sub(x, pj.X)
			num.Mul(num, diff)
		}

		sum.Add(sum, new(big.Rat).SetFrac(num, den))
	}

	return sum, nil
}

// Secret returns f(0) for the polynomial through all of points.
// It fails with ErrNonIntegerResult if f(0) is not an integer, which means
// the points do not lie on an integer-coefficient polynomial.
func Secret(points []sss.Point) (*big.Int, error) {
	r, err := InterpolateAt(points, new(big.Int))
	if err != nil {
		return nil, err
	}
	if !r.IsInt() {
		return nil, fmt.Errorf("%w: f(0) = %s", sss.ErrNonIntegerResult, r.RatString())
	}
	return new(big.Int).Set(r.Num()), nil
}

// Reconstruct selects the k points with the smallest x and returns the
// constant term of the polynomial through them.
func Reconstruct(points []sss.Point, k int) (*big.Int, error) {
	selected, err := Select(points, k)
	if err != nil {
		return nil, err
	}
	return Secret(selected)
}

// InterpolateAtMod is InterpolateAt carried out in the scalar field f.
// Two x values congruent modulo the field order count as duplicates.
func InterpolateAtMod(points []sss.Point, x *big.Int, f curves.Field) (*big.Int, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points", sss.ErrInsufficientPoints)
	}

	xs := make([]curves.Scalar, len(points))
	for i, p := range points {
		xs[i] = f.NewScalarFromBigInt(p.X)
	}
	at := f.NewScalarFromBigInt(x)
	sum := f.NewScalarFromBigInt(new(big.Int))

	for i, p := range points {
		num := f.NewScalarFromBigInt(p.Y)
		den := f.NewScalarFromBigInt(big.NewInt(1))

		for j := range points {
			if i == j {
				continue
			}
			d := xs[i].Sub(xs[j])
			if d.IsZero() {
				return nil, fmt.Errorf("%w: x=%s and x=%s modulo %s order", sss.ErrDuplicateAbscissa, p.X, points[j].X, f.Name())
			}
			den = den.Mul(d)
			num = num.Mul(at.Sub(xs[j]))
		}

		sum = sum.Add(num.Mul(den.Invert()))
	}

	return sum.BigInt(), nil
}

// ReconstructMod is Reconstruct in the scalar field f. The result is the
// secret reduced modulo the field order.
func ReconstructMod(points []sss.Point, k int, f curves.Field) (*big.Int, error) {
	selected, err := Select(points, k)
	if err != nil {
		return nil, err
	}
	return InterpolateAtMod(selected, new(big.Int), f)
}

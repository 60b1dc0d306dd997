package polynomial

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	"github.com/smallyu/go-shamir-recover/pkg/sss"
)

// Polynomial represents a polynomial f(x) = a_0 + a_1*x + ... + a_t*x^t
// with integer coefficients.
type Polynomial struct {
	Coefficients []*big.Int
}

// New generates a polynomial of given degree with the constant term (secret)
// provided and the remaining coefficients drawn uniformly from [0, bound).
// If random is nil, crypto/rand is used.
func New(random io.Reader, degree int, secret, bound *big.Int) (*Polynomial, error) {
	if degree < 0 {
		return nil, errors.New("polynomial: negative degree")
	}
	if bound == nil || bound.Sign() <= 0 {
		return nil, errors.New("polynomial: bound must be positive")
	}
	if random == nil {
		random = rand.Reader
	}

	coeffs := make([]*big.Int, degree+1)
	coeffs[0] = new(big.Int).Set(secret)

	var err error
	for i := 1; i <= degree; i++ {
		coeffs[i], err = rand.Int(random, bound)
		if err != nil {
			return nil, err
		}
	}

	return &Polynomial{Coefficients: coeffs}, nil
}

// Secret returns a copy of the constant term.
func (p *Polynomial) Secret() *big.Int {
	return new(big.Int).Set(p.Coefficients[0])
}

// Evaluate calculates f(x) exactly.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	// Horner's method
	degree := len(p.Coefficients) - 1
	result := new(big.Int).Set(p.Coefficients[degree])

	for i := degree - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.Coefficients[i])
	}

	return result
}

// EvaluateMulti calculates f(x) for multiple x values
func (p *Polynomial) EvaluateMulti(xs []*big.Int) []*big.Int {
	results := make([]*big.Int, len(xs))
	for i, x := range xs {
		results[i] = p.Evaluate(x)
	}
	return results
}

// Points evaluates f at each index and returns the resulting points.
func (p *Polynomial) Points(indices ...int64) []sss.Point {
	points := make([]sss.Point, len(indices))
	for i, x := range indices {
		bx := big.NewInt(x)
		points[i] = sss.Point{X: bx, Y: p.Evaluate(bx)}
	}
	return points
}

// Package sss holds the data model shared by the decoder, the interpolator
// and the record layer of a (k, n) threshold secret recovery.
package sss

import (
	"math/big"
	"sort"
)

// Calculation is the fixed label written to every output record.
const Calculation = "Lagrange interpolation at x=0"

// Share is one party's point on the secret polynomial, with the y value
// still encoded as a digit string in Base.
type Share struct {
	Index int64  // x-coordinate, positive and unique within an instance
	Base  int    // radix of Value
	Value string // digits valid in Base, letters case-insensitive
}

// Point is a decoded share. Points are never mutated after decoding.
type Point struct {
	X *big.Int
	Y *big.Int
}

// NewPoint builds a Point from a share index and a decoded value.
func NewPoint(x int64, y *big.Int) Point {
	return Point{X: big.NewInt(x), Y: new(big.Int).Set(y)}
}

// Instance is one reconstruction problem: the threshold k, the declared
// share count n and the shares as read from input.
type Instance struct {
	N      int
	K      int
	Shares []Share
}

// Degree returns the degree of the secret polynomial.
func (in *Instance) Degree() int {
	return in.K - 1
}

// SortedShares returns a copy of the shares ordered by index.
func (in *Instance) SortedShares() []Share {
	out := make([]Share, len(in.Shares))
	copy(out, in.Shares)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// Result is the sole artifact of a reconstruction.
type Result struct {
	Secret     *big.Int
	PointsUsed []Point
	// Field names the scalar field the secret was reduced into; empty for
	// exact integer reconstruction.
	Field string
	// Verified counts shares beyond the first k that were checked against
	// the polynomial. Zero when the check is disabled.
	Verified int
}

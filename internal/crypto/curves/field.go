// Package curves exposes the scalar fields of the supported elliptic curves
// so shares can be recovered modulo a group order instead of over the
// integers.
package curves

import (
	"fmt"
	"math/big"
	"sort"
)

// Scalar represents a value in a curve's scalar field.
type Scalar interface {
	// BigInt returns the scalar as a big integer in [0, order).
	BigInt() *big.Int

	// Add adds this scalar to another scalar.
	Add(s Scalar) Scalar

	// Sub subtracts another scalar from this scalar.
	Sub(s Scalar) Scalar

	// Mul multiplies this scalar by another scalar.
	Mul(s Scalar) Scalar

	// Invert returns the modular inverse of the scalar.
	// The inverse of zero is zero.
	Invert() Scalar

	// IsZero reports whether the scalar is zero.
	IsZero() bool
}

// Field is the scalar field of a curve, i.e. integers modulo its group order.
type Field interface {
	// Name returns the name of the curve.
	Name() string

	// Order returns the order of the base point (group order).
	Order() *big.Int

	// NewScalarFromBigInt reduces n modulo the order. Negative n is accepted.
	NewScalarFromBigInt(n *big.Int) Scalar
}

var fields = map[string]func() Field{
	"secp256k1": func() Field { return NewSecp256k1() },
	"ed25519":   func() Field { return NewEd25519() },
}

// Lookup returns the field registered under name.
func Lookup(name string) (Field, error) {
	ctor, ok := fields[name]
	if !ok {
		return nil, fmt.Errorf("curves: unknown field %q (supported: %v)", name, Names())
	}
	return ctor(), nil
}

// Names lists the registered field names in order.
func Names() []string {
	names := make([]string, 0, len(fields))
	for n := range fields {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// reduce returns n mod order in [0, order).
func reduce(n, order *big.Int) *big.Int {
	return new(big.Int).Mod(n, order)
}

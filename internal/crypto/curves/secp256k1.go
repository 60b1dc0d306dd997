package curves

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

type Secp256k1 struct{}

// NewSecp256k1 returns the scalar field of secp256k1.
func NewSecp256k1() *Secp256k1 {
	return &Secp256k1{}
}

func (c *Secp256k1) Name() string {
	return "secp256k1"
}

func (c *Secp256k1) Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().N)
}

func (c *Secp256k1) NewScalarFromBigInt(n *big.Int) Scalar {
	// SetByteSlice truncates input longer than 32 bytes, so reduce first.
	r := reduce(n, secp256k1.S256().N)
	var s secp256k1.ModNScalar
	s.SetByteSlice(r.Bytes())
	return &Secp256k1Scalar{s: s}
}

// Secp256k1Scalar implements Scalar
type Secp256k1Scalar struct {
	s secp256k1.ModNScalar
}

func (s *Secp256k1Scalar) BigInt() *big.Int {
	b := s.s.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func (s *Secp256k1Scalar) Add(other Scalar) Scalar {
	o, ok := other.(*Secp256k1Scalar)
	if !ok {
		panic("type mismatch")
	}
	var res secp256k1.ModNScalar
	res.Add2(&s.s, &o.s)
	return &Secp256k1Scalar{s: res}
}

func (s *Secp256k1Scalar) Sub(other Scalar) Scalar {
	o, ok := other.(*Secp256k1Scalar)
	if !ok {
		panic("type mismatch")
	}
	var neg, res secp256k1.ModNScalar
	neg.NegateVal(&o.s)
	res.Add2(&s.s, &neg)
	return &Secp256k1Scalar{s: res}
}

func (s *Secp256k1Scalar) Mul(other Scalar) Scalar {
	o, ok := other.(*Secp256k1Scalar)
	if !ok {
		panic("type mismatch")
	}
	var res secp256k1.ModNScalar
	res.Mul2(&s.s, &o.s)
	return &Secp256k1Scalar{s: res}
}

func (s *Secp256k1Scalar) Invert() Scalar {
	var res secp256k1.ModNScalar
	res.InverseValNonConst(&s.s)
	return &Secp256k1Scalar{s: res}
}

func (s *Secp256k1Scalar) IsZero() bool {
	return s.s.IsZero()
}

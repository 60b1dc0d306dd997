package curves

import (
	"math/big"

	"filippo.io/edwards25519"
)

// l = 2^252 + 27742317777372353535851937790883648493
var ed25519Order, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

type Ed25519Curve struct{}

// NewEd25519 returns the scalar field of Ed25519.
func NewEd25519() *Ed25519Curve {
	return &Ed25519Curve{}
}

func (c *Ed25519Curve) Name() string {
	return "ed25519"
}

func (c *Ed25519Curve) Order() *big.Int {
	return new(big.Int).Set(ed25519Order)
}

func (c *Ed25519Curve) NewScalarFromBigInt(n *big.Int) Scalar {
	// edwards25519 uses little-endian, big.Int.Bytes() is big-endian.
	bytes := reduce(n, ed25519Order).Bytes()

	var buf [32]byte
	for i := 0; i < len(bytes); i++ {
		buf[len(bytes)-1-i] = bytes[i]
	}

	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		// unreachable: the value was reduced below l
		panic(err)
	}
	return &Ed25519Scalar{s: s}
}

// Ed25519Scalar implements Scalar
type Ed25519Scalar struct {
	s *edwards25519.Scalar
}

func (s *Ed25519Scalar) BigInt() *big.Int {
	b := s.s.Bytes()
	buf := make([]byte, len(b))
	for i := range b {
		buf[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(buf)
}

func (s *Ed25519Scalar) Add(other Scalar) Scalar {
	o, ok := other.(*Ed25519Scalar)
	if !ok {
		panic("type mismatch")
	}
	return &Ed25519Scalar{s: edwards25519.NewScalar().Add(s.s, o.s)}
}

func (s *Ed25519Scalar) Sub(other Scalar) Scalar {
	o, ok := other.(*Ed25519Scalar)
	if !ok {
		panic("type mismatch")
	}
	return &Ed25519Scalar{s: edwards25519.NewScalar().Subtract(s.s, o.s)}
}

func (s *Ed25519Scalar) Mul(other Scalar) Scalar {
	o, ok := other.(*Ed25519Scalar)
	if !ok {
		panic("type mismatch")
	}
	return &Ed25519Scalar{s: edwards25519.NewScalar().Multiply(s.s, o.s)}
}

func (s *Ed25519Scalar) Invert() Scalar {
	return &Ed25519Scalar{s: edwards25519.NewScalar().Invert(s.s)}
}

func (s *Ed25519Scalar) IsZero() bool {
	return s.s.Equal(edwards25519.NewScalar()) == 1
}

package identify

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/smallyu/go-shamir-recover/internal/crypto/curves"
	"github.com/smallyu/go-shamir-recover/internal/crypto/polynomial"
	"github.com/smallyu/go-shamir-recover/pkg/sss"
)

func quadratic() *polynomial.Polynomial {
	// f(x) = 3 + x^2
	return &polynomial.Polynomial{
		Coefficients: []*big.Int{big.NewInt(3), big.NewInt(0), big.NewInt(1)},
	}
}

func TestCheckConsistent(t *testing.T) {
	points := quadratic().Points(1, 2, 3, 4, 5, 6)

	if err := Check(points[:3], points[3:], nil); err != nil {
		t.Fatalf("consistent shares reported as inconsistent: %v", err)
	}

	for _, f := range []curves.Field{curves.NewSecp256k1(), curves.NewEd25519()} {
		if err := Check(points[:3], points[3:], f); err != nil {
			t.Errorf("%s: consistent shares reported as inconsistent: %v", f.Name(), err)
		}
	}

	if err := Check(points[:3], nil, nil); err != nil {
		t.Errorf("no extras should pass, got %v", err)
	}
}

func TestCheckBlamesTamperedShares(t *testing.T) {
	points := quadratic().Points(1, 2, 3, 4, 5, 6)
	points[3].Y = big.NewInt(20) // f(4) = 19
	points[5].Y = big.NewInt(0)  // f(6) = 39

	err := Check(points[:3], points[3:], nil)
	if !errors.Is(err, sss.ErrInconsistentShares) {
		t.Fatalf("expected ErrInconsistentShares, got %v", err)
	}

	blamed := Blamed(err)
	if len(blamed) != 2 || blamed[0] != 4 || blamed[1] != 6 {
		t.Errorf("blamed = %v, expected [4 6]", blamed)
	}

	if sss.Kind(err) != "InconsistentShares" {
		t.Errorf("Kind = %q", sss.Kind(err))
	}
}

func TestCheckFieldMode(t *testing.T) {
	f := curves.NewSecp256k1()
	points := quadratic().Points(1, 2, 3, 4)

	// y + order is the same field element
	shifted := sss.Point{X: points[3].X, Y: new(big.Int).Add(points[3].Y, f.Order())}
	if err := Check(points[:3], []sss.Point{shifted}, f); err != nil {
		t.Errorf("congruent y rejected in field mode: %v", err)
	}

	// but differs over the integers
	if err := Check(points[:3], []sss.Point{shifted}, nil); !errors.Is(err, sss.ErrInconsistentShares) {
		t.Errorf("expected inconsistency over the integers, got %v", err)
	}
}

func TestCheckDuplicate(t *testing.T) {
	points := quadratic().Points(1, 2, 3)
	err := Check(points[:2], points[:2], nil)
	if err != nil {
		t.Errorf("selected points trivially lie on their own polynomial: %v", err)
	}

	bad := []sss.Point{points[0], points[0]}
	err = Check(bad, points[2:], nil)
	if !errors.Is(err, sss.ErrDuplicateAbscissa) {
		t.Errorf("expected ErrDuplicateAbscissa, got %v", err)
	}
}

func TestBlamedWrapped(t *testing.T) {
	err := fmt.Errorf("reconstruct: %w", sss.NewBlame(9, "decode", sss.ErrInvalidDigit))
	if got := Blamed(err); len(got) != 1 || got[0] != 9 {
		t.Errorf("Blamed = %v, expected [9]", got)
	}
	if got := Blamed(nil); len(got) != 0 {
		t.Errorf("Blamed(nil) = %v", got)
	}
}

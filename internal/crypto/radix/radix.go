// Package radix converts between digit strings in bases 2..36 and exact
// integers.
package radix

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/smallyu/go-shamir-recover/pkg/sss"
)

const (
	MinBase = 2
	MaxBase = 36
)

// digitValue maps '0'-'9' to 0-9 and 'a'-'z' (either case) to 10-35.
// Any other byte returns -1.
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("%w: %d not in [%d, %d]", sss.ErrInvalidBase, base, MinBase, MaxBase)
	}
	return nil
}

// Decode returns the non-negative integer whose digits in base are value,
// most significant digit first.
//
// The accumulation is always done on a big.Int regardless of the length of
// value, so short and long inputs go through the same code path.
func Decode(value string, base int) (*big.Int, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	if value == "" {
		return nil, sss.ErrEmptyValue
	}

	bigBase := big.NewInt(int64(base))
	acc := new(big.Int)
	var d big.Int

	for i := 0; i < len(value); i++ {
		v := digitValue(value[i])
		if v < 0 || v >= base {
			return nil, fmt.Errorf("%w: %q at position %d in base %d", sss.ErrInvalidDigit, value[i], i, base)
		}
		// acc = acc * base + d
		acc.Mul(acc, bigBase)
		acc.Add(acc, d.SetInt64(int64(v)))
	}

	return acc, nil
}

// Encode is the inverse of Decode: lowercase digits, no leading zeros.
func Encode(v *big.Int, base int) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}
	if v == nil || v.Sign() < 0 {
		return "", fmt.Errorf("radix: cannot encode %v", v)
	}
	return v.Text(base), nil
}

// Canonical strips leading zeros and lowercases value, yielding the string
// Encode would produce for the decoded integer. It does not validate digits.
func Canonical(value string) string {
	s := strings.TrimLeft(strings.ToLower(value), "0")
	if s == "" && value != "" {
		return "0"
	}
	return s
}

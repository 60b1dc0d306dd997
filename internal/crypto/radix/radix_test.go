package radix

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-shamir-recover/pkg/sss"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		value string
		base  int
		want  int64
	}{
		{"binary", "1010", 2, 10},
		{"hex lower", "ff", 16, 255},
		{"hex upper", "FF", 16, 255},
		{"hex mixed", "fF", 16, 255},
		{"decimal", "123", 10, 123},
		{"octal", "777", 8, 511},
		{"base 36", "z", 36, 35},
		{"base 36 two digits", "10", 36, 36},
		{"leading zeros", "0007", 10, 7},
		{"zero", "0", 2, 0},
		{"base 3", "111", 3, 13},
		{"base 15", "aed7015a346d63", 15, 21_394_886_326_566_393},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.value, tt.base)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(big.NewInt(tt.want)), "got %s", got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		value string
		base  int
		want  error
	}{
		{"digit equal to base", "102", 2, sss.ErrInvalidDigit},
		{"letter above base", "1g", 16, sss.ErrInvalidDigit},
		{"sign prefix", "-1", 10, sss.ErrInvalidDigit},
		{"plus prefix", "+1", 10, sss.ErrInvalidDigit},
		{"underscore", "1_000", 10, sss.ErrInvalidDigit},
		{"space", "1 0", 10, sss.ErrInvalidDigit},
		{"non ascii", "1é", 36, sss.ErrInvalidDigit},
		{"empty", "", 10, sss.ErrEmptyValue},
		{"base one", "0", 1, sss.ErrInvalidBase},
		{"base zero", "0", 0, sss.ErrInvalidBase},
		{"base 37", "0", 37, sss.ErrInvalidBase},
		{"base checked before value", "", 99, sss.ErrInvalidBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.value, tt.base)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, got)
		})
	}
}

func TestDecodeExceeds64Bits(t *testing.T) {
	value := strings.Repeat("z", 30)

	got, err := Decode(value, 36)
	require.NoError(t, err)

	// 36^30 - 1
	want := new(big.Int).Exp(big.NewInt(36), big.NewInt(30), nil)
	want.Sub(want, big.NewInt(1))
	assert.Equal(t, 0, got.Cmp(want))

	maxUint64 := new(big.Int).SetUint64(^uint64(0))
	assert.Equal(t, 1, got.Cmp(maxUint64), "30 base-36 digits must exceed 2^64")
}

func TestDecodeLengthIndependent(t *testing.T) {
	// The same number written with and without a long run of leading zeros
	// must decode identically.
	short, err := Decode("3f", 16)
	require.NoError(t, err)
	long, err := Decode(strings.Repeat("0", 40)+"3f", 16)
	require.NoError(t, err)
	assert.Equal(t, 0, short.Cmp(long))
}

func TestDecodeMatchesSetString(t *testing.T) {
	values := []string{
		"13444211440455345511",
		"aed7015a346d635",
		"6aeeb69631c227c",
		"e1b5e05623d881f",
		"316034514573652620673",
		"2122212201122002221120200210011020220200",
		"20120221122211000100210021102001201112121",
	}
	bases := []int{6, 15, 15, 16, 8, 3, 3}

	for i, v := range values {
		got, err := Decode(v, bases[i])
		require.NoError(t, err)
		want, ok := new(big.Int).SetString(v, bases[i])
		require.True(t, ok)
		assert.Equal(t, 0, got.Cmp(want), "value %q base %d", v, bases[i])
	}
}

func TestDeterministic(t *testing.T) {
	a, err := Decode("Zz09", 36)
	require.NoError(t, err)
	b, err := Decode("Zz09", 36)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotSame(t, a, b)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		value string
		base  int
	}{
		{"1010", 2},
		{"00ff", 16},
		{"FF", 16},
		{"0", 10},
		{"000", 7},
		{strings.Repeat("z", 30), 36},
		{"1234567890abcdefghijklmnopqrstuvwxyz", 36},
	}

	for _, tt := range tests {
		d, err := Decode(tt.value, tt.base)
		require.NoError(t, err)
		enc, err := Encode(d, tt.base)
		require.NoError(t, err)
		assert.Equal(t, Canonical(tt.value), enc, "value %q base %d", tt.value, tt.base)
	}
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode(big.NewInt(5), 1)
	assert.ErrorIs(t, err, sss.ErrInvalidBase)

	_, err = Encode(big.NewInt(-5), 10)
	assert.Error(t, err)

	_, err = Encode(nil, 10)
	assert.Error(t, err)
}

func FuzzDecode(f *testing.F) {
	f.Add("1010", 2)
	f.Add("ff", 16)
	f.Add("zz", 36)
	f.Add("", 10)
	f.Add("102", 2)

	f.Fuzz(func(t *testing.T, value string, base int) {
		got, err := Decode(value, base)
		if err != nil {
			return
		}
		// Every accepted input must round-trip.
		enc, err := Encode(got, base)
		if err != nil {
			t.Fatalf("Encode failed for accepted input %q base %d: %v", value, base, err)
		}
		if enc != Canonical(value) {
			t.Fatalf("round trip %q base %d: got %q", value, base, enc)
		}
	})
}

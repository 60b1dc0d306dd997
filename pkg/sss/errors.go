package sss

import (
	"errors"
	"fmt"
)

// Errors returned while recovering a secret. Concrete failures wrap one of
// these, so callers should match with errors.Is.
var (
	// Decoder errors.
	ErrInvalidBase  = errors.New("invalid base")
	ErrInvalidDigit = errors.New("invalid digit")
	ErrEmptyValue   = errors.New("empty value")

	// Interpolator errors.
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrDuplicateAbscissa  = errors.New("duplicate abscissa")
	ErrNonIntegerResult   = errors.New("non-integer result")

	// ErrInconsistentShares is reported only when the consistency check is
	// enabled and a share beyond the first k does not lie on the polynomial.
	ErrInconsistentShares = errors.New("inconsistent shares")

	// ErrMalformedInput is raised by the record layer.
	ErrMalformedInput = errors.New("malformed input")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidBase, "InvalidBase"},
	{ErrInvalidDigit, "InvalidDigit"},
	{ErrEmptyValue, "EmptyValue"},
	{ErrInsufficientPoints, "InsufficientPoints"},
	{ErrDuplicateAbscissa, "DuplicateAbscissa"},
	{ErrNonIntegerResult, "NonIntegerResult"},
	{ErrInconsistentShares, "InconsistentShares"},
	{ErrMalformedInput, "MalformedInput"},
}

// Kind returns the taxonomy name of err, e.g. "InvalidDigit".
// It returns "" for a nil error and "Unknown" for errors outside the taxonomy.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Unknown"
}

// Blame represents an error caused by a specific share.
// It lets the caller report which party supplied the bad data.
type Blame struct {
	Index  int64
	Reason string
	Err    error
}

func (b *Blame) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("share %d: %s: %v", b.Index, b.Reason, b.Err)
	}
	return fmt.Sprintf("share %d: %s", b.Index, b.Reason)
}

func (b *Blame) Unwrap() error {
	return b.Err
}

// NewBlame creates a new Blame error.
func NewBlame(index int64, reason string, err error) *Blame {
	return &Blame{
		Index:  index,
		Reason: reason,
		Err:    err,
	}
}

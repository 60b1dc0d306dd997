// Package record reads problem instances from their JSON form and writes
// results back.
//
// An input record looks like
//
//	{
//	    "keys": {"n": 4, "k": 3},
//	    "1": {"base": "10", "value": "4"},
//	    "2": {"base": "2", "value": "111"},
//	    ...
//	}
//
// where every key other than "keys" is a share index and base may be a JSON
// string or number.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/smallyu/go-shamir-recover/pkg/sss"
)

type keys struct {
	N *int `json:"n"`
	K *int `json:"k"`
}

type rawShare struct {
	Base  json.RawMessage `json:"base"`
	Value *string         `json:"value"`
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", sss.ErrMalformedInput, fmt.Sprintf(format, args...))
}

// Parse decodes an input record. Shares are returned sorted by index.
func Parse(data []byte) (*sss.Instance, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed("unmarshal record: %v", err)
	}

	keysRaw, ok := raw["keys"]
	if !ok {
		return nil, malformed("missing keys")
	}
	var k keys
	if err := json.Unmarshal(keysRaw, &k); err != nil {
		return nil, malformed("parse keys: %v", err)
	}
	if k.N == nil || k.K == nil {
		return nil, malformed("keys must contain n and k")
	}
	if *k.K < 1 {
		return nil, malformed("k must be at least 1, got %d", *k.K)
	}
	if *k.K > *k.N {
		return nil, malformed("k=%d exceeds n=%d", *k.K, *k.N)
	}

	inst := &sss.Instance{N: *k.N, K: *k.K}
	for key, msg := range raw {
		if key == "keys" {
			continue
		}
		share, err := parseShare(key, msg)
		if err != nil {
			return nil, err
		}
		inst.Shares = append(inst.Shares, share)
	}
	inst.Shares = inst.SortedShares()

	return inst, nil
}

func parseShare(key string, msg json.RawMessage) (sss.Share, error) {
	index, err := strconv.ParseInt(key, 10, 64)
	if err != nil || index < 1 {
		return sss.Share{}, malformed("share key %q is not a positive integer", key)
	}

	var rs rawShare
	if err := json.Unmarshal(msg, &rs); err != nil {
		return sss.Share{}, malformed("share %d: %v", index, err)
	}
	if rs.Value == nil {
		return sss.Share{}, malformed("share %d: missing value", index)
	}
	if len(rs.Base) == 0 || bytes.Equal(rs.Base, []byte("null")) {
		return sss.Share{}, malformed("share %d: missing base", index)
	}
	base, err := parseBase(rs.Base)
	if err != nil {
		return sss.Share{}, malformed("share %d: %v", index, err)
	}

	return sss.Share{Index: index, Base: base, Value: *rs.Value}, nil
}

// parseBase accepts "16" as well as 16. Range checks are left to the decoder.
func parseBase(raw json.RawMessage) (int, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.Atoi(strings.TrimSpace(s))
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("base must be a string or number")
	}
	v, err := strconv.Atoi(n.String())
	if err != nil {
		return 0, fmt.Errorf("base %s is not an integer", n)
	}
	return v, nil
}

// Load reads and parses the input record at path.
func Load(path string) (*sss.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	inst, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inst, nil
}

// Output is the JSON form of sss.Result. Big values are carried as decimal
// strings.
type Output struct {
	Secret      string        `json:"secret"`
	PointsUsed  []OutputPoint `json:"pointsUsed"`
	Calculation string        `json:"calculation"`
	Field       string        `json:"field,omitempty"`
	Verified    int           `json:"verified,omitempty"`
}

// OutputPoint is one point used for interpolation.
type OutputPoint struct {
	X *big.Int `json:"x"`
	Y string   `json:"y"`
}

// NewOutput converts a result into its output record.
func NewOutput(res *sss.Result) *Output {
	out := &Output{
		Secret:      res.Secret.String(),
		PointsUsed:  make([]OutputPoint, len(res.PointsUsed)),
		Calculation: sss.Calculation,
		Field:       res.Field,
		Verified:    res.Verified,
	}
	for i, p := range res.PointsUsed {
		out.PointsUsed[i] = OutputPoint{X: p.X, Y: p.Y.String()}
	}
	return out
}

// Encode renders the output record of res, indented by two spaces.
func Encode(res *sss.Result) ([]byte, error) {
	return json.MarshalIndent(NewOutput(res), "", "  ")
}

// Save writes the output record of res to path.
func Save(path string, res *sss.Result) error {
	data, err := Encode(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

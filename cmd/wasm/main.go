//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-shamir-recover/internal/crypto/curves"
	"github.com/smallyu/go-shamir-recover/internal/protocol/reconstruct"
	"github.com/smallyu/go-shamir-recover/internal/record"
	"github.com/smallyu/go-shamir-recover/pkg/sss"
)

func main() {
	c := make(chan struct{})

	fmt.Println("Go Shamir recovery WASM initialized")

	// Expose Go functions to JS
	js.Global().Set("GoShamir", map[string]interface{}{
		"Recover": js.FuncOf(Recover),
		"Fields":  js.FuncOf(Fields),
	})

	<-c
}

// Recover reconstructs the secret of one input record.
// Arguments:
// 0: JSON string of the input record
// 1: optional JSON string of options {"field": "...", "verify": bool}
// Returns:
// JSON string of the output record, or "error: <Kind>: <message>"
func Recover(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || len(args) > 2 {
		return "error: expected 1 or 2 arguments (jsonInput, jsonOptions)"
	}

	type OptionsInput struct {
		Field  string `json:"field"`
		Verify bool   `json:"verify"`
	}

	var in OptionsInput
	if len(args) == 2 && args[1].Type() == js.TypeString {
		if err := json.Unmarshal([]byte(args[1].String()), &in); err != nil {
			return fmt.Sprintf("error: invalid options json: %v", err)
		}
	}

	opts := reconstruct.Options{Verify: in.Verify}
	if in.Field != "" {
		f, err := curves.Lookup(in.Field)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		opts.Field = f
	}

	inst, err := record.Parse([]byte(args[0].String()))
	if err != nil {
		return fmt.Sprintf("error: %s: %v", sss.Kind(err), err)
	}

	res, err := reconstruct.Run(context.Background(), inst, opts)
	if err != nil {
		return fmt.Sprintf("error: %s: %v", sss.Kind(err), err)
	}

	out, err := record.Encode(res)
	if err != nil {
		return fmt.Sprintf("error: encode result: %v", err)
	}
	return string(out)
}

// Fields lists the scalar fields accepted in the "field" option.
func Fields(this js.Value, args []js.Value) interface{} {
	names := curves.Names()
	out := make([]interface{}, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}

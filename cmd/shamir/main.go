// Command shamir recovers the secret of one or more (k, n) threshold
// instances stored as JSON records.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-shamir-recover/internal/config"
	"github.com/smallyu/go-shamir-recover/internal/logging"
	"github.com/smallyu/go-shamir-recover/internal/protocol/reconstruct"
	"github.com/smallyu/go-shamir-recover/internal/record"
	"github.com/smallyu/go-shamir-recover/pkg/sss"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type outcome struct {
	input  string
	result *sss.Result
	err    error
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse("shamir", args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	log, err := logging.NewHandler(stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	opts := reconstruct.Options{
		Field:  cfg.FieldOrNil(),
		Verify: cfg.Verify,
		Logger: log,
		Reveal: cfg.Reveal,
	}

	outcomes := make([]outcome, len(cfg.Inputs))

	// A failing instance must not cancel the others.
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, input := range cfg.Inputs {
		i, input := i, input
		g.Go(func() error {
			res, err := solve(ctx, input, cfg.OutputFor(input), opts, log)
			outcomes[i] = outcome{input: input, result: res, err: err}
			return nil
		})
	}
	_ = g.Wait()

	code := 0
	for _, o := range outcomes {
		if o.err != nil {
			fmt.Fprintf(stderr, "%s: %s: %v\n", o.input, sss.Kind(o.err), o.err)
			code = 1
			continue
		}
		fmt.Fprintf(stdout, "Secret for %s: %s\n", o.input, o.result.Secret)
	}
	return code
}

// solve handles one input file end to end. Output is only written when the
// whole reconstruction succeeded.
func solve(ctx context.Context, input, output string, opts reconstruct.Options, log logging.Logger) (*sss.Result, error) {
	l := log.With("file", input)
	opts.Logger = l

	inst, err := record.Load(input)
	if err != nil {
		return nil, err
	}

	res, err := reconstruct.Run(ctx, inst, opts)
	if err != nil {
		l.Error(ctx, "reconstruction failed", "kind", sss.Kind(err), "err", err)
		return nil, err
	}

	if err := record.Save(output, res); err != nil {
		return nil, err
	}
	l.Info(ctx, "output saved", "path", output)
	return res, nil
}

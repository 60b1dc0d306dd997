// Package config holds the command-line configuration of the shamir command.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/smallyu/go-shamir-recover/internal/crypto/curves"
	"github.com/smallyu/go-shamir-recover/internal/logging"
)

const (
	DefaultInput   = "testcase.json"
	DefaultOutput  = "output.json"
	DefaultWorkers = 4
)

// Config describes one invocation of the command.
type Config struct {
	Inputs    []string
	Output    string
	Field     string
	Verify    bool
	Workers   int
	LogLevel  string
	LogFormat string
	Reveal    bool
}

// Parse builds a Config from command-line arguments (without the program
// name). Usage and flag errors are written to errOut.
func Parse(name string, args []string, errOut io.Writer) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] [input.json ...]\n\n", name)
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.Output, "o", DefaultOutput, "output path when a single input is given")
	fs.StringVar(&cfg.Field, "field", "", fmt.Sprintf("reduce into a curve scalar field (%s); empty for exact integers", strings.Join(curves.Names(), ", ")))
	fs.BoolVar(&cfg.Verify, "verify", false, "check shares beyond k against the recovered polynomial")
	fs.IntVar(&cfg.Workers, "workers", DefaultWorkers, "instances processed concurrently")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "text", "log format (text, json)")
	fs.BoolVar(&cfg.Reveal, "reveal", false, "log the recovered secret instead of redacting it")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Inputs = fs.Args()
	if len(cfg.Inputs) == 0 {
		cfg.Inputs = []string{DefaultInput}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for unsupported values.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config: nil config")
	}
	if len(c.Inputs) == 0 {
		return errors.New("config: no input files")
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	if c.Field != "" {
		if _, err := curves.Lookup(c.Field); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	if len(c.Inputs) == 1 && c.Output == "" {
		return errors.New("config: empty output path")
	}
	return nil
}

// FieldOrNil returns the configured scalar field, or nil for exact mode.
func (c *Config) FieldOrNil() curves.Field {
	if c.Field == "" {
		return nil
	}
	f, err := curves.Lookup(c.Field)
	if err != nil {
		return nil
	}
	return f
}

// OutputFor returns where the result for input should be written: the -o
// path for a single input, otherwise "<stem>.output.json" next to input.
func (c *Config) OutputFor(input string) string {
	if len(c.Inputs) == 1 {
		return c.Output
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".output.json"
}

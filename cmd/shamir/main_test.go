package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func copyFixture(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "test", "e2e", "testdata", name))
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestRunSingle(t *testing.T) {
	dir := t.TempDir()
	in := copyFixture(t, dir, "testcase1.json")
	out := filepath.Join(dir, "result.json")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-o", out, in}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Secret for "+in+": 3")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, "3", rec["secret"])
	assert.Equal(t, "Lagrange interpolation at x=0", rec["calculation"])
	assert.Len(t, rec["pointsUsed"], 3)

	// the secret is redacted in logs by default
	assert.Contains(t, stderr.String(), "secret=[redacted]")
}

func TestRunMultipleWithFailure(t *testing.T) {
	dir := t.TempDir()
	good := copyFixture(t, dir, "testcase1.json")
	bad := copyFixture(t, dir, "invalid_digit.json")
	trunc := copyFixture(t, dir, "truncation.json")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-workers", "2", good, bad, trunc}, &stdout, &stderr)
	assert.Equal(t, 1, code)

	assert.Contains(t, stdout.String(), "Secret for "+good+": 3")
	assert.Contains(t, stdout.String(), "Secret for "+trunc+": 5")
	assert.NotContains(t, stdout.String(), bad)
	assert.Contains(t, stderr.String(), bad+": InvalidDigit:")

	assert.FileExists(t, filepath.Join(dir, "testcase1.output.json"))
	assert.FileExists(t, filepath.Join(dir, "truncation.output.json"))
	assert.NoFileExists(t, filepath.Join(dir, "invalid_digit.output.json"))
}

func TestRunVerifyField(t *testing.T) {
	dir := t.TempDir()
	in := copyFixture(t, dir, "large_consistent.json")
	out := filepath.Join(dir, "out.json")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-field", "ed25519", "-verify", "-o", out, in}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, "ed25519", rec["field"])
	assert.Equal(t, float64(2), rec["verified"])
}

func TestRunBadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), []string{"-field", "p256"}, &stdout, &stderr))
	assert.Equal(t, 0, run(context.Background(), []string{"-h"}, &stdout, &stderr))
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{filepath.Join(t.TempDir(), "nope.json")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Unknown")
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poem(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte("Rust:\nsafe, fast, productive.\nPick three."), 0o644))
	return path
}

func TestRunPrintsMatches(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"linefind", "duct", poem(t)}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "safe, fast, productive.\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunNoMatchesSucceeds(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"linefind", "hello", poem(t)}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunCaseInsensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rust.txt")
	require.NoError(t, os.WriteFile(path, []byte("RUST\nrust\nRuSt"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"linefind", "rust", path, "-i"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "RUST\nrust\nRuSt\n", stdout.String())
}

func TestRunInsufficientArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"linefind", "duct"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "insufficient arguments")
}

func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	var stdout, stderr bytes.Buffer
	code := run([]string{"linefind", "duct", missing}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "file read error")
	assert.Contains(t, stderr.String(), missing)
}

func TestRunStrictUnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"linefind", "--strict", "--colour", "duct", poem(t)}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unknown flag: --colour")
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"linefind", "--version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "linefind dev\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"linefind", "--verbose", "duct", poem(t)}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "safe, fast, productive.\n", stdout.String())
	assert.Contains(t, stderr.String(), "level=DEBUG")
}

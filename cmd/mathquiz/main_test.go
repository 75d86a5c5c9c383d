package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagConfig = ""
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "time_limit_seconds: 10")
	assert.Contains(t, out, "promote_at: 100")
	assert.Contains(t, out, "points_per_combo: 10")
}

func TestConfigCommandReadsCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tiers:\n  promote_at: 50\n"), 0o600))

	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "promote_at: 50")
	assert.Contains(t, out, "time_limit_seconds: 10", "unset keys keep their defaults")
}

func TestConfigCommandRejectsMissingFile(t *testing.T) {
	_, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

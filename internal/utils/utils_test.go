package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirExistsCreatesNested(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDirExists(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDirExistsIdempotent(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, EnsureDirExists(dir))
	assert.NoError(t, EnsureDirExists(dir))
}

func TestEnsureDirExistsOnFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	// A regular file at the path is not an error for Stat, and MkdirAll is
	// never reached; creating a child under it is.
	assert.Error(t, EnsureDirExists(filepath.Join(file, "child")))
}

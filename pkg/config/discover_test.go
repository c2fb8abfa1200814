//go:build !integration

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
}

func TestDiscover_Single(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "config/my-scaffy.json")
	touch(t, root, "node_modules/pkg/scaffy.json")
	touch(t, root, ".git/scaffy.json")
	touch(t, root, "package.json")

	path, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "config", "my-scaffy.json"), path)
}

func TestDiscover_NotFound(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "node_modules/scaffy.json")

	_, err := Discover(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "scaffy.json")
}

func TestDiscover_Ambiguous(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "scaffy.json")
	touch(t, root, "nested/scaffy.yml")

	_, err := Discover(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguous)
	assert.Contains(t, err.Error(), "nested/scaffy.yml, scaffy.json")
	assert.Contains(t, err.Error(), "--config")
}

func TestFindConfigFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "b/scaffy.yaml")
	touch(t, root, "a/scaffy.json")
	touch(t, root, "scaffy.txt")

	matches, err := FindConfigFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/scaffy.json", "b/scaffy.yaml"}, matches)
}

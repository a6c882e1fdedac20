package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte(`
ui.theme: light
ui.language: en
`)

	tmpDir := t.TempDir()
	specPath := filepath.Join(tmpDir, "defaults.yaml")

	err := os.WriteFile(specPath, content, 0o600)
	require.NoError(t, err)

	fetcher, err := NewFetcher(specPath)
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestNewFetcher_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("/nonexistent/path/defaults.yaml")

	require.Error(t, err)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "stat file")
}

func TestNewFetcher_Directory(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(t.TempDir())

	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Nil(t, fetcher)
}

func TestFetcher_Fetch_EmptyFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	specPath := filepath.Join(tmpDir, "empty.yaml")

	err := os.WriteFile(specPath, []byte{}, 0o600)
	require.NoError(t, err)

	fetcher, err := NewFetcher(specPath)
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFetcher_Fetch_ReturnsCopy(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	specPath := filepath.Join(tmpDir, "defaults.yaml")

	err := os.WriteFile(specPath, []byte("key: value\n"), 0o600)
	require.NoError(t, err)

	fetcher, err := NewFetcher(specPath)
	require.NoError(t, err)

	first, err := fetcher.Fetch()
	require.NoError(t, err)

	first[0] = 'X'

	second, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, byte('k'), second[0])
}

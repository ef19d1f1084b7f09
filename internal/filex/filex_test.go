package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWithSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o600))

	f, size, err := OpenWithSize(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	assert.EqualValues(t, 7, size)
}

func TestOpenWithSize_MissingFile(t *testing.T) {
	_, _, err := OpenWithSize(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestOpenWithSize_Directory(t *testing.T) {
	_, _, err := OpenWithSize(t.TempDir())
	require.Error(t, err)
}

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniffContentType(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "bom.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"bomFormat":"CycloneDX","specVersion":"1.5"}`), 0o600))

	xmlPath := filepath.Join(dir, "bom.xml")
	require.NoError(t, os.WriteFile(xmlPath, []byte(`<?xml version="1.0"?><bom/>`), 0o600))

	assert.Equal(t, "application/json", sniffContentType(jsonPath))
	assert.Equal(t, "text/xml", sniffContentType(xmlPath))
}

func TestSniffContentType_StripsParameters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o600))

	got := sniffContentType(path)
	assert.NotContains(t, got, ";")
	assert.Equal(t, "text/plain", got)
}

func TestSniffContentType_MissingFile(t *testing.T) {
	assert.Empty(t, sniffContentType(filepath.Join(t.TempDir(), "nope.json")))
}

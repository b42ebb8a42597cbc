package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPagesPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text content"), 0o644))

	pages, err := ExtractPages(path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, 0, pages[0].Number, "plain text has no page concept")
	assert.Equal(t, "plain text content", pages[0].Text)
}

func TestExtractPagesUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x00}, 0o644))

	_, err := ExtractPages(path)
	assert.Error(t, err)
}

func TestLoadLocalFilesFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "b.txt", "c.md", "skip.docx", "skip.go"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "d.png"), []byte("x"), 0o644))

	files, err := LoadLocalFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 4)
	for _, f := range files {
		assert.NotContains(t, f, "skip")
	}
}

func TestHasText(t *testing.T) {
	assert.False(t, hasText(nil))
	assert.False(t, hasText([]Page{{Number: 1, Text: "   "}}))
	assert.True(t, hasText([]Page{{Number: 1, Text: ""}, {Number: 2, Text: "words"}}))
}

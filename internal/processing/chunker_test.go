package processing

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextSplitsParagraphs(t *testing.T) {
	text := "first paragraph\n\nsecond paragraph\n\n\nthird paragraph"
	chunks := ChunkText(text)
	assert.Equal(t, []string{"first paragraph", "second paragraph", "third paragraph"}, chunks)
}

func TestChunkTextSkipsBlank(t *testing.T) {
	assert.Nil(t, ChunkText(""))
	assert.Nil(t, ChunkText("\n\n  \n\n"))
}

func TestChunkTextLongParagraph(t *testing.T) {
	long := strings.Repeat("a", 1200)
	chunks := ChunkText(long)
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), chunkSize)
	}
	// consecutive chunks overlap by chunkOverlap characters
	assert.Equal(t, chunks[0][chunkSize-chunkOverlap:], chunks[1][:chunkOverlap])
}

func TestChunkTextMultibyte(t *testing.T) {
	long := strings.Repeat("日本語テキスト", 120) // 720 chars, 2160 bytes
	chunks := ChunkText(long)
	require.Greater(t, len(chunks), 1)
	total := 0
	for _, c := range chunks {
		assert.True(t, utf8.ValidString(c))
		runes := len([]rune(c))
		assert.LessOrEqual(t, runes, chunkSize)
		total += runes
	}
	// windows overlap, so rune counts add up to more than the input
	assert.GreaterOrEqual(t, total, len([]rune(long)))
}

func TestSplitLongKeepsTail(t *testing.T) {
	s := strings.Repeat("b", 520)
	parts := splitLong(s, 500, 50)
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 500)
	// second chunk starts 450 in, so nothing at the end is dropped
	assert.Equal(t, s[450:], parts[1])
}

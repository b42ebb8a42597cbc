package processing

import (
	"regexp"
	"strings"
)

// Chunk size and overlap match the splitter the corpus was indexed with;
// changing them requires re-indexing.
const (
	chunkSize    = 500
	chunkOverlap = 50
)

var paragraphRe = regexp.MustCompile(`\n{2,}`)

// ChunkText splits text into paragraph chunks, further dividing long
// paragraphs into ~500-char pieces with 50-char overlap.
func ChunkText(text string) []string {
	paras := paragraphRe.Split(text, -1)
	var out []string
	for _, p := range paras {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, splitLong(p, chunkSize, chunkOverlap)...)
	}
	return out
}

// splitLong windows over runes so multibyte text never breaks mid-character.
func splitLong(s string, max, overlap int) []string {
	runes := []rune(s)
	if len(runes) <= max {
		return []string{s}
	}
	var res []string
	for i := 0; i < len(runes); i += max - overlap {
		end := i + max
		if end > len(runes) {
			end = len(runes)
		}
		res = append(res, strings.TrimSpace(string(runes[i:end])))
		if end == len(runes) {
			break
		}
	}
	return res
}

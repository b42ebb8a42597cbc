package retrieval

import (
	"fmt"
	"strings"
)

// snippetLimit caps citation snippets so the map stays cheap to ship to UIs.
const snippetLimit = 150

// Serialize turns ranked passages into a single context block with stable
// chunk IDs [C1], [C2], ... and the citation map keyed by those IDs.
// ID assignment is strictly positional: the first passage is always C1.
// An empty input produces an empty context and an empty map.
func Serialize(passages []Passage) (string, map[string]CitationEntry) {
	var parts []string
	citations := make(map[string]CitationEntry, len(passages))

	for i, p := range passages {
		id := fmt.Sprintf("C%d", i+1)
		page := p.Page
		if page == "" {
			page = PageUnknown
		}
		text := strings.TrimSpace(p.Text)

		parts = append(parts, fmt.Sprintf("[%s] Chunk from page %s:\n%s", id, page, text))

		// cap counts characters, not bytes, so multibyte text is never cut
		// mid-rune
		snippet := text
		if runes := []rune(snippet); len(runes) > snippetLimit {
			snippet = string(runes[:snippetLimit]) + "..."
		}
		citations[id] = CitationEntry{
			ID:      id,
			Page:    page,
			Source:  p.Source,
			Snippet: snippet,
		}
	}

	return strings.Join(parts, "\n\n"), citations
}

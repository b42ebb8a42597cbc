package retrieval

// PageUnknown is used when a passage has no page metadata.
const PageUnknown = "unknown"

// Passage is one retrieved unit of source text. The slice order returned by
// a Store is the retrieval rank and drives citation ID assignment.
type Passage struct {
	Text   string
	Source string
	Page   string
}

// CitationEntry is one row of the citation map handed back to callers so
// they can render [C#] markers against real source locations.
type CitationEntry struct {
	ID      string `json:"id"`
	Page    string `json:"page"`
	Source  string `json:"source"`
	Snippet string `json:"snippet"`
}

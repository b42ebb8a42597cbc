package pipeline

import (
	"github.com/Divas-Gupta30/doc-qa-agent/internal/retrieval"
)

// QAState is the per-request state threaded through the stages. Each field
// is written exactly once: stages take the state by value and return a copy
// with their field filled in, so no stage can rewrite an earlier result.
type QAState struct {
	Question    string
	Context     string
	Citations   map[string]retrieval.CitationEntry
	DraftAnswer string
	Answer      string

	// Degraded marks a request whose retrieval failed or returned nothing;
	// the answer may explicitly state that no supporting context was found.
	Degraded bool
}

// Answer is the terminal result exposed to callers once the pipeline
// reaches Done.
type Answer struct {
	Answer      string                             `json:"answer"`
	Citations   map[string]retrieval.CitationEntry `json:"citations"`
	ContextSize int                                `json:"context_size"`
	Degraded    bool                               `json:"degraded"`
}

// Package pipeline implements the three-stage question-answering flow:
// retrieval, draft generation, and verification. Data moves strictly
// forward through a per-request QAState; no stage re-invokes an earlier
// one and every [C#] marker in the final answer is backed by a citation
// map entry built during retrieval.
package pipeline

import (
	"context"
	"regexp"

	"go.uber.org/zap"

	"github.com/Divas-Gupta30/doc-qa-agent/internal/retrieval"
)

// DefaultK is the retrieval fan-out used when none is configured.
const DefaultK = 4

// Store is the passage-retrieval capability the pipeline depends on.
// Results must be ranked best-first; rank order becomes citation order.
type Store interface {
	Search(ctx context.Context, query string, k int) ([]retrieval.Passage, error)
}

// Generator is the text-generation capability. Implementations must honor
// the temperature parameter; both pipeline calls pin it to 0.
type Generator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
}

// Pipeline runs one question through retrieval, draft and verification.
// It holds no per-request state and is safe for concurrent use.
type Pipeline struct {
	store  Store
	gen    Generator
	k      int
	logger *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithK overrides the retrieval fan-out.
func WithK(k int) Option {
	return func(p *Pipeline) {
		if k > 0 {
			p.k = k
		}
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func New(store Store, gen Generator, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:  store,
		gen:    gen,
		k:      DefaultK,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Answer runs the full pipeline for one question. Stages run strictly in
// order; a hard failure in draft or verification aborts with a StageError
// naming the stage, while retrieval failures only degrade the result.
func (p *Pipeline) Answer(ctx context.Context, question string) (*Answer, error) {
	st := QAState{Question: question}

	stages := []struct {
		stage Stage
		run   func(context.Context, QAState) (QAState, error)
	}{
		{StageRetrieval, p.retrieve},
		{StageDraft, p.draft},
		{StageVerification, p.verify},
	}

	for _, s := range stages {
		next, err := s.run(ctx, st)
		if err != nil {
			p.logger.Error("pipeline aborted",
				zap.String("stage", string(s.stage)), zap.Error(err))
			return nil, &StageError{Stage: s.stage, Err: err}
		}
		st = next
	}

	p.logger.Info("question answered",
		zap.Int("context_size", len(st.Context)),
		zap.Int("citations", len(st.Citations)),
		zap.Bool("degraded", st.Degraded))

	return &Answer{
		Answer:      st.Answer,
		Citations:   st.Citations,
		ContextSize: len(st.Context),
		Degraded:    st.Degraded,
	}, nil
}

var citationMarkerRe = regexp.MustCompile(`\[C\d+\]`)

// DanglingCitations returns the [C#] markers in text that have no entry in
// the citation map. The verification prompt is written to eliminate these;
// this check makes the contract observable to callers and tests.
func DanglingCitations(text string, citations map[string]retrieval.CitationEntry) []string {
	var dangling []string
	seen := make(map[string]struct{})
	for _, m := range citationMarkerRe.FindAllString(text, -1) {
		id := m[1 : len(m)-1]
		if _, ok := citations[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		dangling = append(dangling, id)
	}
	return dangling
}

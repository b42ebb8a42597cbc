package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Divas-Gupta30/doc-qa-agent/internal/retrieval"
)

// retrieve gathers context for the question and serializes it with stable
// chunk IDs. Store errors are absorbed: the stage returns an empty context
// and marks the state degraded so the model can report that it cannot
// answer, rather than failing the whole request.
func (p *Pipeline) retrieve(ctx context.Context, st QAState) (QAState, error) {
	passages, err := p.store.Search(ctx, st.Question, p.k)
	if err != nil {
		p.logger.Warn("retrieval failed, continuing with empty context",
			zap.Error(err))
		st.Context = ""
		st.Citations = map[string]retrieval.CitationEntry{}
		st.Degraded = true
		return st, nil
	}

	st.Context, st.Citations = retrieval.Serialize(passages)
	if len(passages) == 0 {
		st.Degraded = true
	}
	return st, nil
}

// draft asks the model for an unverified answer grounded in the context.
// No citation validation happens here; that is the verification stage's
// job. A generation error is fatal for the request since there is nothing
// to verify without a draft.
func (p *Pipeline) draft(ctx context.Context, st QAState) (QAState, error) {
	user := fmt.Sprintf("Question: %s\n\nContext:\n%s", st.Question, st.Context)

	out, err := p.gen.Complete(ctx, draftSystemPrompt, user, 0.0)
	if err != nil {
		return st, err
	}
	st.DraftAnswer = out
	return st, nil
}

// verify re-checks the draft against the same context in an independent
// generation call. The store is never re-queried here: the chunk IDs must
// keep meaning exactly what they meant when the draft was written.
func (p *Pipeline) verify(ctx context.Context, st QAState) (QAState, error) {
	user := fmt.Sprintf(`Question: %s

Context:
%s

Draft Answer:
%s

Please verify and correct the draft answer, removing any unsupported claims.`,
		st.Question, st.Context, st.DraftAnswer)

	out, err := p.gen.Complete(ctx, verifySystemPrompt, user, 0.0)
	if err != nil {
		return st, err
	}
	st.Answer = out
	return st, nil
}

package retrieval

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Embedder converts a query into the vector the index searches by.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// VectorIndex is the similarity-search capability backing the adapter.
// Results must come back ranked best-first.
type VectorIndex interface {
	SearchSimilar(ctx context.Context, embedding []float32, k int) ([]Passage, error)
}

// Adapter wraps the vector index behind the query-string interface the
// pipeline consumes. It is safe for concurrent use; the underlying index
// connection is shared read-only across requests.
type Adapter struct {
	embedder Embedder
	index    VectorIndex
	logger   *zap.Logger
}

func NewAdapter(embedder Embedder, index VectorIndex, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{embedder: embedder, index: index, logger: logger}
}

// Search embeds the query and returns the top-k passages by similarity.
func (a *Adapter) Search(ctx context.Context, query string, k int) ([]Passage, error) {
	emb, err := a.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	passages, err := a.index.SearchSimilar(ctx, emb, k)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	a.logger.Debug("retrieved passages", zap.Int("count", len(passages)), zap.Int("k", k))
	return passages, nil
}

package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEmbedder struct {
	vec []float32
	err error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return f.vec, f.err
}

type fakeIndex struct {
	gotEmbedding []float32
	gotK         int
	passages     []Passage
	err          error
}

func (f *fakeIndex) SearchSimilar(ctx context.Context, embedding []float32, k int) ([]Passage, error) {
	f.gotEmbedding = embedding
	f.gotK = k
	return f.passages, f.err
}

func TestAdapterSearch(t *testing.T) {
	index := &fakeIndex{passages: []Passage{{Text: "hit", Source: "a.pdf", Page: "2"}}}
	a := NewAdapter(&fakeEmbedder{vec: []float32{1, 2}}, index, zap.NewNop())

	got, err := a.Search(context.Background(), "query", 4)
	require.NoError(t, err)
	assert.Equal(t, index.passages, got)
	assert.Equal(t, []float32{1, 2}, index.gotEmbedding)
	assert.Equal(t, 4, index.gotK)
}

func TestAdapterSearchEmbedError(t *testing.T) {
	a := NewAdapter(&fakeEmbedder{err: errors.New("no embedding")}, &fakeIndex{}, nil)
	_, err := a.Search(context.Background(), "query", 4)
	assert.Error(t, err)
}

func TestAdapterSearchIndexError(t *testing.T) {
	a := NewAdapter(&fakeEmbedder{vec: []float32{1}}, &fakeIndex{err: errors.New("db down")}, nil)
	_, err := a.Search(context.Background(), "query", 4)
	assert.Error(t, err)
}

package processing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedReturnsVector(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		var req embeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Input)
		_, _ = w.Write([]byte(`{"data":[{"embedding":[0.1,0.2,0.3]}]}`))
	}))
	defer ts.Close()

	e, err := NewEmbedder(EmbedderConfig{BaseURL: ts.URL, APIKey: "k"})
	require.NoError(t, err)

	vec, err := e.Embed(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
}

func TestEmbedRejectsEmptyText(t *testing.T) {
	e, err := NewEmbedder(EmbedderConfig{APIKey: "k"})
	require.NoError(t, err)
	_, err = e.Embed(context.Background(), "")
	assert.Error(t, err)
}

func TestEmbedChunksPreservesOrder(t *testing.T) {
	var n int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n++
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{{"embedding": []float32{float32(n)}}},
		})
	}))
	defer ts.Close()

	e, err := NewEmbedder(EmbedderConfig{BaseURL: ts.URL, APIKey: "k"})
	require.NoError(t, err)

	out, err := e.EmbedChunks(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []float32{1}, out[0])
	assert.Equal(t, []float32{3}, out[2])
}

func TestEmbedChunksEmpty(t *testing.T) {
	e, err := NewEmbedder(EmbedderConfig{APIKey: "k"})
	require.NoError(t, err)
	_, err = e.EmbedChunks(context.Background(), nil)
	assert.Error(t, err)
}

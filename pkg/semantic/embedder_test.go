package semantic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIEmbedder_Embed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Input []string `json:"input"`
			Model string   `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"first", "second"}, req.Input)
		assert.Equal(t, "text-embedding-3-small", req.Model)

		// reversed order, client must reorder by index
		resp := map[string]any{
			"object": "list",
			"model":  req.Model,
			"data": []map[string]any{
				{"object": "embedding", "index": 1, "embedding": []float32{0, 1}},
				{"object": "embedding", "index": 0, "embedding": []float32{1, 0}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	e := NewOpenAIEmbedder(EmbedderConfig{Endpoint: ts.URL + "/v1", APIKey: "test-key", Model: "text-embedding-3-small"})
	vecs, err := e.Embed(context.Background(), []string{"first", "second"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 0}, {0, 1}}, vecs)

	vecs, err = e.Embed(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, vecs)
}

func TestOpenAIEmbedder_Error(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer ts.Close()

	e := NewOpenAIEmbedder(EmbedderConfig{Endpoint: ts.URL + "/v1", APIKey: "k", Model: "m"})
	_, err := e.Embed(context.Background(), []string{"x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai embed failed")
}

func TestNewEmbedder(t *testing.T) {
	e, err := NewEmbedder(EmbedderConfig{Provider: "none"})
	require.NoError(t, err)
	assert.Nil(t, e)

	e, err = NewEmbedder(EmbedderConfig{Provider: "openai", APIKey: "k", Model: "m"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIEmbedder{}, e)

	e, err = NewEmbedder(EmbedderConfig{Provider: "genai", APIKey: "k"})
	require.NoError(t, err)
	require.IsType(t, &GenAIEmbedder{}, e)
	assert.Equal(t, "text-embedding-004", e.(*GenAIEmbedder).cfg.Model)

	_, err = NewEmbedder(EmbedderConfig{Provider: "genai"})
	require.Error(t, err)

	_, err = NewEmbedder(EmbedderConfig{Provider: "word2vec"})
	require.Error(t, err)
}

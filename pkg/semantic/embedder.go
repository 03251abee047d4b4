package semantic

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// EmbedderConfig selects and configures an embedding provider
type EmbedderConfig struct {
	Provider string // openai, genai or none
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// NewEmbedder returns the configured embedder, nil for provider none
func NewEmbedder(cfg EmbedderConfig) (Embedder, error) {
	switch cfg.Provider {
	case "", "none":
		return nil, nil
	case "openai":
		return NewOpenAIEmbedder(cfg), nil
	case "genai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("genai embedder requires an api key")
		}
		return NewGenAIEmbedder(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider %q", cfg.Provider)
	}
}

// OpenAIEmbedder uses an OpenAI-compatible embeddings endpoint
type OpenAIEmbedder struct {
	client *openai.Client
	model  string
}

// NewOpenAIEmbedder creates an embedder for cfg, Endpoint overrides the default base URL
func NewOpenAIEmbedder(cfg EmbedderConfig) *OpenAIEmbedder {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &OpenAIEmbedder{client: openai.NewClientWithConfig(clientConfig), model: cfg.Model}
}

// Embed returns one vector per text
func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, fmt.Errorf("openai embed failed: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai embed returned %d vectors for %d texts", len(resp.Data), len(texts))
	}
	res := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(res) {
			return nil, fmt.Errorf("openai embed returned index %d out of range", d.Index)
		}
		res[d.Index] = d.Embedding
	}
	return res, nil
}

// GenAIEmbedder uses the Gemini embeddings API. The client is created on first use.
type GenAIEmbedder struct {
	cfg     EmbedderConfig
	once    sync.Once
	client  *genai.Client
	initErr error
}

// NewGenAIEmbedder creates an embedder for cfg
func NewGenAIEmbedder(cfg EmbedderConfig) *GenAIEmbedder {
	if cfg.Model == "" {
		cfg.Model = "text-embedding-004"
	}
	return &GenAIEmbedder{cfg: cfg}
}

// Embed returns one vector per text
func (e *GenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	e.once.Do(func() {
		e.client, e.initErr = genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:  e.cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	if e.initErr != nil {
		return nil, fmt.Errorf("create genai client: %w", e.initErr)
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}
	result, err := e.client.Models.EmbedContent(ctx, e.cfg.Model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("genai embed failed: %w", err)
	}
	if len(result.Embeddings) != len(texts) {
		return nil, fmt.Errorf("genai embed returned %d vectors for %d texts", len(result.Embeddings), len(texts))
	}
	res := make([][]float32, len(texts))
	for i, emb := range result.Embeddings {
		res[i] = emb.Values
	}
	return res, nil
}

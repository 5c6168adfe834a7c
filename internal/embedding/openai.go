// Package embedding obtains vector embeddings from an external embedding
// service. The Adapter handles batching, bounded concurrency, and retries
// on top of a Service, which performs one bounded upstream call.
package embedding

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Service performs a single bounded call to the embedding collaborator.
// The i-th output vector corresponds to the i-th input text.
type Service interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
	Model() string
}

// OpenAIService embeds text through the OpenAI embeddings API.
type OpenAIService struct {
	client *openai.Client
	model  string
	dim    int
}

// NewOpenAIService creates a Service backed by the given OpenAI client and
// embedding model.
func NewOpenAIService(client *openai.Client, model string) *OpenAIService {
	dim := 1536
	if model == string(openai.LargeEmbedding3) {
		dim = 3072
	}
	return &OpenAIService{client: client, model: model, dim: dim}
}

// Embed requests embeddings for texts in one API call. Results are placed
// by the response's index field so ordering survives any upstream
// reordering.
func (s *OpenAIService) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := s.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(s.model),
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai returned %d embeddings for %d inputs", len(resp.Data), len(texts))
	}
	out := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(out) {
			return nil, fmt.Errorf("openai embedding index %d out of range", d.Index)
		}
		out[d.Index] = d.Embedding
	}
	return out, nil
}

// Dimension returns the vector length the configured model produces.
func (s *OpenAIService) Dimension() int {
	return s.dim
}

// Model returns the embedding model identifier.
func (s *OpenAIService) Model() string {
	return s.model
}

package utils

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIEmbeddingClient implements EmbeddingClientInterface using the OpenAI embeddings API
type OpenAIEmbeddingClient struct {
	client     *openai.Client
	model      string
	dimensions int
}

func NewOpenAIEmbeddingClient(apiKey, model string, dimensions int) *OpenAIEmbeddingClient {
	return NewOpenAIEmbeddingClientWithConfig(openai.DefaultConfig(apiKey), model, dimensions)
}

// NewOpenAIEmbeddingClientWithConfig allows pointing the client at any OpenAI-compatible endpoint.
func NewOpenAIEmbeddingClientWithConfig(cfg openai.ClientConfig, model string, dimensions int) *OpenAIEmbeddingClient {
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	return &OpenAIEmbeddingClient{
		client:     openai.NewClientWithConfig(cfg),
		model:      model,
		dimensions: dimensions,
	}
}

func (c *OpenAIEmbeddingClient) Dimensions() int { return c.dimensions }

func (c *OpenAIEmbeddingClient) ModelName() string { return c.model }

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	vecs, err := c.GetEmbeddings(ctx, []string{text})
	if err != nil {
		return pgvector.Vector{}, err
	}
	return vecs[0], nil
}

func (c *OpenAIEmbeddingClient) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: no input texts provided", ErrInvalidInput)
	}

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:      texts,
		Model:      openai.EmbeddingModel(c.model),
		Dimensions: c.dimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: openai: %v", ErrEmbeddingFailed, err)
	}

	// Ensure results are in input order.
	vecs := make([]pgvector.Vector, len(texts))
	filled := make([]bool, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(texts) {
			return nil, fmt.Errorf("%w: openai: invalid index %d in response", ErrEmbeddingFailed, d.Index)
		}
		vecs[d.Index] = pgvector.NewVector(d.Embedding)
		filled[d.Index] = true
	}
	for i, ok := range filled {
		if !ok {
			return nil, fmt.Errorf("%w: openai: missing embedding for input %d", ErrEmbeddingFailed, i)
		}
	}

	return vecs, nil
}

package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

// GeminiEmbeddingClient implements EmbeddingClientInterface using Google's embedding models
type GeminiEmbeddingClient struct {
	client     *genai.Client
	model      string
	dimensions int
}

// NewGeminiEmbeddingClient creates a new Gemini client
func NewGeminiEmbeddingClient(apiKey, model string, dimensions int) (*GeminiEmbeddingClient, error) {
	if model == "" {
		model = "text-embedding-004"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbeddingClient{
		client:     client,
		model:      model,
		dimensions: dimensions,
	}, nil
}

func (c *GeminiEmbeddingClient) Dimensions() int { return c.dimensions }

func (c *GeminiEmbeddingClient) ModelName() string { return c.model }

func (c *GeminiEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	em := c.client.EmbeddingModel(c.model)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("%w: gemini: %v", ErrEmbeddingFailed, err)
	}
	if res == nil || res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return pgvector.Vector{}, fmt.Errorf("%w: gemini: empty embedding returned", ErrEmbeddingFailed)
	}
	return pgvector.NewVector(res.Embedding.Values), nil
}

// GetEmbeddings batch processes multiple texts
func (c *GeminiEmbeddingClient) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: no input texts provided", ErrInvalidInput)
	}

	em := c.client.EmbeddingModel(c.model)
	batch := em.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}

	res, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini: %v", ErrEmbeddingFailed, err)
	}
	if len(res.Embeddings) != len(texts) {
		return nil, fmt.Errorf("%w: gemini: got %d embeddings for %d texts", ErrEmbeddingFailed, len(res.Embeddings), len(texts))
	}

	vectors := make([]pgvector.Vector, len(texts))
	for i, e := range res.Embeddings {
		vectors[i] = pgvector.NewVector(e.Values)
	}
	return vectors, nil
}

// Close closes the Gemini client
func (c *GeminiEmbeddingClient) Close() error {
	return c.client.Close()
}

package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// EmbeddingClientInterface turns text into fixed-dimension vectors.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error)
	// Dimensions is the deployment-wide vector length this client is configured for.
	Dimensions() int
	ModelName() string
}

// NewEmbeddingClient Factory function to create an OpenAI, Gemini or hash client based on config
func NewEmbeddingClient(provider, apiKey, model string, dimensions int) (EmbeddingClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIEmbeddingClient(apiKey, model, dimensions), nil
	case "gemini":
		return NewGeminiEmbeddingClient(apiKey, model, dimensions)
	case "hash":
		return NewHashEmbeddingClient(dimensions), nil
	default:
		return nil, fmt.Errorf("%w: %s. Use 'openai', 'gemini' or 'hash'", ErrUnsupportedProvider, provider)
	}
}

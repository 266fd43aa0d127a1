package utils

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// HashEmbeddingClient is an offline, deterministic EmbeddingClientInterface.
// Each word contributes a sine pattern seeded by its hash; the sum is L2-normalized.
// Texts sharing words land close together, which is enough for local catalogs and tests.
type HashEmbeddingClient struct {
	dimensions int
}

func NewHashEmbeddingClient(dimensions int) *HashEmbeddingClient {
	return &HashEmbeddingClient{dimensions: dimensions}
}

func (c *HashEmbeddingClient) Dimensions() int { return c.dimensions }

func (c *HashEmbeddingClient) ModelName() string { return fmt.Sprintf("fnv-hash-%d", c.dimensions) }

func (c *HashEmbeddingClient) GetEmbedding(_ context.Context, text string) (pgvector.Vector, error) {
	return c.textToVector(text), nil
}

func (c *HashEmbeddingClient) GetEmbeddings(_ context.Context, texts []string) ([]pgvector.Vector, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: no input texts provided", ErrInvalidInput)
	}

	vectors := make([]pgvector.Vector, len(texts))
	for i, text := range texts {
		vectors[i] = c.textToVector(text)
	}
	return vectors, nil
}

func (c *HashEmbeddingClient) textToVector(text string) pgvector.Vector {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	vector := make([]float32, c.dimensions)

	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < c.dimensions; i++ {
			vector[i] += float32(math.Sin(float64(hash+uint32(i))) * 0.1)
		}
	}

	var magnitude float64
	for _, val := range vector {
		magnitude += float64(val) * float64(val)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude > 0 {
		for i := range vector {
			vector[i] = float32(float64(vector[i]) / magnitude)
		}
	}

	return pgvector.NewVector(vector)
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(word))
	return h.Sum32()
}

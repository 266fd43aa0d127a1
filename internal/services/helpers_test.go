package services

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/pgvector/pgvector-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"tripscore/internal/repositories"
	"tripscore/pkg/utils"
)

const testDim = 16

// stubEmbedder wraps the hash client and lets tests override or count calls.
type stubEmbedder struct {
	*utils.HashEmbeddingClient
	calls    atomic.Int32
	override func(texts []string) ([]pgvector.Vector, error)
}

func newStubEmbedder() *stubEmbedder {
	return &stubEmbedder{HashEmbeddingClient: utils.NewHashEmbeddingClient(testDim)}
}

func (s *stubEmbedder) GetEmbeddings(ctx context.Context, texts []string) ([]pgvector.Vector, error) {
	s.calls.Add(1)
	if s.override != nil {
		return s.override(texts)
	}
	return s.HashEmbeddingClient.GetEmbeddings(ctx, texts)
}

func (s *stubEmbedder) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	vecs, err := s.GetEmbeddings(ctx, []string{text})
	if err != nil {
		return pgvector.Vector{}, err
	}
	return vecs[0], nil
}

func newTestCatalog(t *testing.T, embedder utils.EmbeddingClientInterface, opts CatalogOptions) *PlaceCatalog {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPlaceCatalog(
		repositories.NewBadgerPlaceRepository(db),
		repositories.NewBadgerEmbeddingRepository(db),
		embedder,
		opts,
		zerolog.Nop(),
	)
}

func ptr(v float64) *float64 { return &v }

package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripscore/internal/index"
	"tripscore/internal/models/request_models"
	"tripscore/pkg/utils"
)

type fixedIndex struct {
	neighbors []index.Neighbor
}

func (f fixedIndex) Query([]float32, int) ([]index.Neighbor, error) {
	return f.neighbors, nil
}

func seededResolver(t *testing.T) (*EntityResolver, *PlaceCatalog) {
	t.Helper()
	ctx := context.Background()
	embedder := newStubEmbedder()
	catalog := newTestCatalog(t, embedder, CatalogOptions{})

	_, err := catalog.AddPlaces(ctx, []request_models.CreatePlaceRequest{
		{Name: "Taj Mahal", Description: "white marble mausoleum agra", City: "Agra"},
		{Name: "Gateway of India", Description: "arch monument mumbai harbour", City: "Mumbai"},
		{Name: "Hawa Mahal", Description: "pink palace of winds jaipur", City: "Jaipur"},
	})
	require.NoError(t, err)

	idx := index.New()
	require.NoError(t, NewIndexService(catalog, idx, testDim, zerolog.Nop()).Rebuild(ctx))

	return NewEntityResolver(embedder, idx, catalog, zerolog.Nop()), catalog
}

func TestEntityResolver_ExactDescriptionIsNearest(t *testing.T) {
	resolver, _ := seededResolver(t)

	matches, err := resolver.Resolve(context.Background(), "pink palace of winds jaipur", 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Hawa Mahal", matches[0].Place.Name)
	assert.InDelta(t, 0.0, matches[0].Distance, 1e-9)
}

func TestEntityResolver_TopKSortedAndCapped(t *testing.T) {
	resolver, _ := seededResolver(t)

	matches, err := resolver.Resolve(context.Background(), "white marble mausoleum agra", 10)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "Taj Mahal", matches[0].Place.Name)
	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i-1].Distance, matches[i].Distance)
	}
}

func TestEntityResolver_Deterministic(t *testing.T) {
	resolver, _ := seededResolver(t)
	ctx := context.Background()

	first, err := resolver.Resolve(ctx, "historic fort", 3)
	require.NoError(t, err)
	second, err := resolver.Resolve(ctx, "historic fort", 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEntityResolver_BlankMention(t *testing.T) {
	resolver, _ := seededResolver(t)

	matches, err := resolver.Resolve(context.Background(), "   ", 1)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestEntityResolver_InvalidTopK(t *testing.T) {
	resolver, _ := seededResolver(t)

	_, err := resolver.Resolve(context.Background(), "agra", 0)
	assert.ErrorIs(t, err, index.ErrInvalidK)
}

func TestEntityResolver_EmptyIndex(t *testing.T) {
	embedder := newStubEmbedder()
	catalog := newTestCatalog(t, embedder, CatalogOptions{})
	resolver := NewEntityResolver(embedder, index.New(), catalog, zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), "agra", 1)
	assert.ErrorIs(t, err, index.ErrEmptyCatalog)
}

func TestEntityResolver_DimensionMismatch(t *testing.T) {
	_, catalog := seededResolver(t)
	idx := index.New()
	require.NoError(t, NewIndexService(catalog, idx, 0, zerolog.Nop()).Rebuild(context.Background()))

	other := utils.NewHashEmbeddingClient(testDim / 2)
	resolver := NewEntityResolver(other, idx, catalog, zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), "agra", 1)
	assert.ErrorIs(t, err, index.ErrDimensionMismatch)
}

func TestEntityResolver_SkipsPlacesMissingFromCatalog(t *testing.T) {
	_, catalog := seededResolver(t)
	entries, err := catalog.AllEmbeddings(context.Background())
	require.NoError(t, err)

	idx := fixedIndex{neighbors: []index.Neighbor{
		{PlaceID: uuid.New(), Distance: 0.1},
		{PlaceID: entries[0].PlaceID, Distance: 0.2},
	}}
	resolver := NewEntityResolver(newStubEmbedder(), idx, catalog, zerolog.Nop())

	matches, err := resolver.Resolve(context.Background(), "agra", 2)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Taj Mahal", matches[0].Place.Name)
	assert.Equal(t, 0.2, matches[0].Distance)
}

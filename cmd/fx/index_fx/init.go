package index_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tripscore/internal/index"
	"tripscore/internal/services"
	"tripscore/pkg/utils"
)

var Module = fx.Provide(
	provideIndex,
	provideNearestNeighborIndex,
	provideIndexService)

func provideIndex() *index.Index {
	return index.New()
}

func provideNearestNeighborIndex(idx *index.Index) services.NearestNeighborIndex {
	return idx
}

func provideIndexService(
	catalog services.PlaceCatalogInterface,
	idx *index.Index,
	embedder utils.EmbeddingClientInterface,
	logger zerolog.Logger,
) services.IndexServiceInterface {
	return services.NewIndexService(catalog, idx, embedder.Dimensions(), logger)
}

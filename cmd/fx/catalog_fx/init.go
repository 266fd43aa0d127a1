package catalog_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tripscore/internal/config"
	"tripscore/internal/repositories"
	"tripscore/internal/services"
	"tripscore/pkg/utils"
)

var Module = fx.Provide(
	providePlaceCatalog)

func providePlaceCatalog(
	places repositories.PlaceRepository,
	embeddings repositories.EmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
	cfg *config.Config,
	logger zerolog.Logger,
) services.PlaceCatalogInterface {
	return services.NewPlaceCatalog(places, embeddings, embedder, services.CatalogOptions{
		EmbedBatchSize:   cfg.Catalog.EmbedBatchSize,
		EmbedConcurrency: cfg.Catalog.EmbedConcurrency,
	}, logger)
}

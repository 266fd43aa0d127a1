package scoring_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tripscore/internal/config"
	"tripscore/internal/scoring"
	"tripscore/internal/services"
	"tripscore/pkg/utils"
)

var Module = fx.Provide(
	provideEngine,
	provideEntityResolver,
	provideItineraryService)

func provideEngine(cfg *config.Config, logger zerolog.Logger) scoring.EngineInterface {
	return scoring.NewEngine(cfg.Scoring, logger)
}

func provideEntityResolver(
	embedder utils.EmbeddingClientInterface,
	idx services.NearestNeighborIndex,
	catalog services.PlaceCatalogInterface,
	logger zerolog.Logger,
) services.EntityResolverInterface {
	return services.NewEntityResolver(embedder, idx, catalog, logger)
}

func provideItineraryService(
	resolver services.EntityResolverInterface,
	engine scoring.EngineInterface,
	preference services.PreferenceInferrer,
	logger zerolog.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(resolver, engine, preference, logger)
}

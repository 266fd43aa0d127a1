package db_fx

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tripscore/internal/config"
	"tripscore/internal/infra"
	"tripscore/internal/repositories"
)

var Module = fx.Provide(
	provideStores)

type Stores struct {
	fx.Out

	Places     repositories.PlaceRepository
	Embeddings repositories.EmbeddingRepository
}

// provideStores opens the backend named by catalog.store and closes it on stop.
func provideStores(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (Stores, error) {
	if cfg.Catalog.Store == config.StorePostgres {
		db, err := infra.InitPostgresql(cfg.Database, logger)
		if err != nil {
			return Stores{}, err
		}
		lc.Append(fx.Hook{OnStop: func(context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		}})
		return Stores{
			Places:     repositories.NewPlaceRepository(db),
			Embeddings: repositories.NewPostgresEmbeddingRepository(db),
		}, nil
	}

	db, err := infra.OpenBadger(cfg.Catalog, logger)
	if err != nil {
		return Stores{}, err
	}
	lc.Append(fx.Hook{OnStop: func(context.Context) error {
		infra.CloseBadger(db, logger)
		return nil
	}})
	return Stores{
		Places:     repositories.NewBadgerPlaceRepository(db),
		Embeddings: repositories.NewBadgerEmbeddingRepository(db),
	}, nil
}

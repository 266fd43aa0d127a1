package config_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tripscore/internal/config"
	"tripscore/internal/logging"
)

var Module = fx.Provide(
	provideConfig,
	provideLogger)

func provideConfig() (*config.Config, error) {
	return config.Load()
}

func provideLogger(cfg *config.Config) zerolog.Logger {
	logger := logging.New(cfg.Logging)
	logger.Info().
		Str("store", cfg.Catalog.Store).
		Str("embedding_provider", cfg.Embedding.Provider).
		Int("embedding_dimensions", cfg.Embedding.Dimensions).
		Interface("weights", cfg.Scoring.Weights.ToMap()).
		Msg("configuration loaded")
	return logger
}

package embedding_fx

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tripscore/internal/config"
	"tripscore/internal/services"
	"tripscore/pkg/utils"
)

var Module = fx.Provide(
	ProvideEmbeddingClient,
	ProvidePreferenceInferrer)

// ProvideEmbeddingClient creates the embedding client named by embedding.provider.
func ProvideEmbeddingClient(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (utils.EmbeddingClientInterface, error) {
	e := cfg.Embedding
	client, err := utils.NewEmbeddingClient(e.Provider, e.APIKey(), e.Model, e.Dimensions)
	if err != nil {
		return nil, err
	}

	if closer, ok := client.(interface{ Close() error }); ok {
		lc.Append(fx.Hook{OnStop: func(context.Context) error { return closer.Close() }})
	}

	logger.Info().
		Str("provider", e.Provider).
		Str("model", client.ModelName()).
		Int("dimensions", client.Dimensions()).
		Msg("embedding client initialised")
	return client, nil
}

// ProvidePreferenceInferrer returns nil when sentiment is disabled; scoring
// then falls back to the neutral preference.
func ProvidePreferenceInferrer(cfg *config.Config) services.PreferenceInferrer {
	if !cfg.Sentiment.Enabled {
		return nil
	}
	classifier := utils.NewOpenAISentimentClassifier(cfg.SentimentAPIKey(), cfg.Sentiment.Model)
	return services.NewSentimentPreference(classifier)
}

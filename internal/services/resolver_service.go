package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tripscore/internal/index"
	"tripscore/internal/metrics"
	"tripscore/internal/models/response_models"
	"tripscore/pkg/utils"
)

// NearestNeighborIndex is the query side of *index.Index.
type NearestNeighborIndex interface {
	Query(vec []float32, k int) ([]index.Neighbor, error)
}

type EntityResolverInterface interface {
	Resolve(ctx context.Context, mention string, topK int) ([]response_models.PlaceMatch, error)
}

// EntityResolver maps a free-text mention to catalog places. It keeps no
// cache; every call embeds the mention and queries the current snapshot.
type EntityResolver struct {
	embedder utils.EmbeddingClientInterface
	index    NearestNeighborIndex
	catalog  PlaceCatalogInterface
	logger   zerolog.Logger
}

func NewEntityResolver(
	embedder utils.EmbeddingClientInterface,
	idx NearestNeighborIndex,
	catalog PlaceCatalogInterface,
	logger zerolog.Logger,
) *EntityResolver {
	return &EntityResolver{
		embedder: embedder,
		index:    idx,
		catalog:  catalog,
		logger:   logger.With().Str("component", "entity_resolver").Logger(),
	}
}

// Resolve returns up to topK places nearest-first with their squared L2
// distance. A blank mention yields no matches. An empty or unbuilt index
// and a dimension mismatch are returned as errors.
func (r *EntityResolver) Resolve(ctx context.Context, mention string, topK int) (matches []response_models.PlaceMatch, err error) {
	began := time.Now()
	defer func() { metrics.RecordResolve(time.Since(began), len(matches), err) }()

	if topK < 1 {
		return nil, index.ErrInvalidK
	}
	mention = strings.TrimSpace(mention)
	if mention == "" {
		return []response_models.PlaceMatch{}, nil
	}

	embedStart := time.Now()
	vec, err := r.embedder.GetEmbedding(ctx, mention)
	metrics.RecordEmbedding(r.embedder.ModelName(), time.Since(embedStart))
	if err != nil {
		r.logger.Error().Err(err).Str("mention", mention).Msg("embed mention")
		return nil, err
	}

	neighbors, err := r.index.Query(vec.Slice(), topK)
	if err != nil {
		return nil, err
	}

	matches = make([]response_models.PlaceMatch, 0, len(neighbors))
	for _, n := range neighbors {
		place, err := r.catalog.GetPlace(ctx, n.PlaceID)
		if errors.Is(err, utils.ErrPlaceNotFound) {
			// snapshot predates a catalog change
			r.logger.Warn().Str("place_id", n.PlaceID.String()).Msg("indexed place missing from catalog")
			continue
		}
		if err != nil {
			return nil, err
		}
		matches = append(matches, response_models.PlaceMatch{Place: *place, Distance: n.Distance})
	}

	r.logger.Debug().Str("mention", mention).Int("matches", len(matches)).Msg("mention resolved")
	return matches, nil
}

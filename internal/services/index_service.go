package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"tripscore/internal/index"
	"tripscore/internal/metrics"
)

type IndexServiceInterface interface {
	Rebuild(ctx context.Context) error
}

// IndexService republishes the similarity index from the catalog. The
// index is a snapshot; callers rebuild after catalog mutations.
type IndexService struct {
	catalog     PlaceCatalogInterface
	index       *index.Index
	expectedDim int
	logger      zerolog.Logger
}

// NewIndexService takes the deployment's embedding dimension; 0 accepts
// whatever the catalog holds.
func NewIndexService(catalog PlaceCatalogInterface, idx *index.Index, expectedDim int, logger zerolog.Logger) *IndexService {
	return &IndexService{
		catalog:     catalog,
		index:       idx,
		expectedDim: expectedDim,
		logger:      logger.With().Str("component", "index_service").Logger(),
	}
}

func (s *IndexService) Rebuild(ctx context.Context) error {
	entries, err := s.catalog.AllEmbeddings(ctx)
	if err != nil {
		metrics.RecordIndexRebuild(0, err)
		return err
	}

	if s.expectedDim > 0 && len(entries) > 0 && len(entries[0].Vector) != s.expectedDim {
		err := &index.DimensionMismatchError{Expected: s.expectedDim, Got: len(entries[0].Vector)}
		metrics.RecordIndexRebuild(0, err)
		s.logger.Error().Err(err).Msg("catalog embeddings do not match the configured model")
		return err
	}

	if err := s.index.Build(entries); err != nil {
		metrics.RecordIndexRebuild(0, err)
		if errors.Is(err, index.ErrEmptyCatalog) {
			s.logger.Warn().Msg("no place embeddings, index not built")
		} else {
			s.logger.Error().Err(err).Msg("index rebuild failed")
		}
		return err
	}

	metrics.RecordIndexRebuild(s.index.Len(), nil)
	s.logger.Info().
		Int("entries", s.index.Len()).
		Int("dimension", s.index.Dimension()).
		Msg("similarity index rebuilt")
	return nil
}

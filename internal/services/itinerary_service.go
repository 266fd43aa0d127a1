package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"tripscore/internal/metrics"
	"tripscore/internal/models/request_models"
	"tripscore/internal/models/response_models"
	"tripscore/internal/scoring"
	"tripscore/internal/validation"
	"tripscore/pkg/utils"
)

type ItineraryServiceInterface interface {
	BuildItinerary(ctx context.Context, text string, entities []request_models.Entity) (request_models.ItineraryInfo, error)
	ScoreItinerary(ctx context.Context, info request_models.ItineraryInfo) (response_models.ScoreResult, error)
	ScoreEntities(ctx context.Context, text string, entities []request_models.Entity) (response_models.ScoreResult, error)
}

type ItineraryService struct {
	resolver   EntityResolverInterface
	engine     scoring.EngineInterface
	preference PreferenceInferrer
	logger     zerolog.Logger
}

// NewItineraryService accepts a nil preference, in which case the engine's
// neutral default is used.
func NewItineraryService(
	resolver EntityResolverInterface,
	engine scoring.EngineInterface,
	preference PreferenceInferrer,
	logger zerolog.Logger,
) *ItineraryService {
	return &ItineraryService{
		resolver:   resolver,
		engine:     engine,
		preference: preference,
		logger:     logger.With().Str("component", "itinerary_service").Logger(),
	}
}

// BuildItinerary resolves every LOCATION entity to its nearest catalog place,
// in entity order. Mentions with no match are dropped.
func (s *ItineraryService) BuildItinerary(ctx context.Context, text string, entities []request_models.Entity) (request_models.ItineraryInfo, error) {
	info := request_models.ItineraryInfo{VisitedPlaces: []request_models.VisitedPlace{}}

	for _, ent := range entities {
		if !strings.EqualFold(ent.Label, request_models.EntityLabelLocation) {
			continue
		}

		matches, err := s.resolver.Resolve(ctx, ent.Text, 1)
		if err != nil {
			return request_models.ItineraryInfo{}, fmt.Errorf("resolve %q: %w", ent.Text, err)
		}
		if len(matches) == 0 {
			s.logger.Info().Str("mention", ent.Text).Msg("no catalog match, dropping mention")
			continue
		}

		info.VisitedPlaces = append(info.VisitedPlaces, visitFromMatch(matches[0]))
	}

	if s.preference != nil {
		alignment, err := s.preference.InferPreference(ctx, text)
		if err != nil {
			s.logger.Warn().Err(err).Msg("preference inference failed, using neutral default")
		} else {
			info.PreferenceAlignment = &alignment
		}
	}

	return info, nil
}

func (s *ItineraryService) ScoreItinerary(ctx context.Context, info request_models.ItineraryInfo) (response_models.ScoreResult, error) {
	if err := validation.Struct(info); err != nil {
		return response_models.ScoreResult{}, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	result := s.engine.Score(info)
	metrics.RecordScore(string(result.Grade), result.OverallScore)
	return result, nil
}

func (s *ItineraryService) ScoreEntities(ctx context.Context, text string, entities []request_models.Entity) (response_models.ScoreResult, error) {
	info, err := s.BuildItinerary(ctx, text, entities)
	if err != nil {
		return response_models.ScoreResult{}, err
	}
	return s.ScoreItinerary(ctx, info)
}

func visitFromMatch(m response_models.PlaceMatch) request_models.VisitedPlace {
	distance := m.Distance
	return request_models.VisitedPlace{
		PlaceID:              m.Place.ID,
		Name:                 m.Place.Name,
		Category:             m.Place.Category,
		City:                 m.Place.City,
		State:                m.Place.State,
		PopularityScore:      m.Place.PopularityScore,
		AverageRating:        m.Place.AverageRating,
		TypicalDurationHours: m.Place.TypicalDurationHours,
		OpeningHours:         m.Place.OpeningHours,
		Tags:                 m.Place.Tags,
		SemanticMatchScore:   &distance,
	}
}

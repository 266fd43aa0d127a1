package scoring

import (
	"github.com/rs/zerolog"

	"tripscore/internal/models/request_models"
	"tripscore/internal/models/response_models"
)

const (
	RecFeasibility = "Consider adjusting pacing or reducing city hops for better feasibility."
	RecPopularity  = "Include more nationally renowned sights for a higher-impact trip."
	RecDiversity   = "Blend different types of activities (nature, shopping, history) for richer experiences."
	RecFlow        = "Optimize your route to avoid unnecessary backtracking."
)

type EngineInterface interface {
	Score(info request_models.ItineraryInfo) response_models.ScoreResult
}

// Engine combines the sub-scores into a weighted, graded result. It holds
// no per-call state and is safe for concurrent use.
type Engine struct {
	cfg    Config
	logger zerolog.Logger
}

func NewEngine(cfg Config, logger zerolog.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		logger: logger.With().Str("component", "scoring_engine").Logger(),
	}
}

func (e *Engine) Score(info request_models.ItineraryInfo) response_models.ScoreResult {
	feasibility := ScoreFeasibility(info, e.cfg)
	popularity := ScorePopularity(info, e.cfg)
	diversity := ScoreDiversity(info)
	flow := ScoreFlow(info)

	preference := e.cfg.NeutralPreference
	if info.PreferenceAlignment != nil {
		preference = *info.PreferenceAlignment
	}

	scores := map[string]float64{
		ComponentFeasibility:         feasibility,
		ComponentPopularity:          popularity,
		ComponentDiversity:           diversity,
		ComponentFlow:                flow,
		ComponentPreferenceAlignment: preference,
	}

	w := e.cfg.Weights
	overall := round3(w.Feasibility*feasibility +
		w.Popularity*popularity +
		w.Diversity*diversity +
		w.Flow*flow +
		w.PreferenceAlignment*preference)

	result := response_models.ScoreResult{
		OverallScore:    overall,
		Scores:          scores,
		Grade:           e.grade(overall),
		Recommendations: e.recommend(feasibility, popularity, diversity, flow),
	}

	e.logger.Debug().
		Int("stops", len(info.VisitedPlaces)).
		Float64("overall", overall).
		Str("grade", string(result.Grade)).
		Int("recommendations", len(result.Recommendations)).
		Msg("itinerary scored")

	return result
}

func (e *Engine) grade(overall float64) response_models.Grade {
	switch g := e.cfg.Grades; {
	case overall >= g.Excellent:
		return response_models.GradeExcellent
	case overall >= g.Good:
		return response_models.GradeGood
	case overall >= g.Decent:
		return response_models.GradeDecent
	default:
		return response_models.GradeNeedsImprovement
	}
}

func (e *Engine) recommend(feasibility, popularity, diversity, flow float64) []string {
	th := e.cfg.Recommendations
	recs := make([]string, 0, 4)
	if feasibility < th.Feasibility {
		recs = append(recs, RecFeasibility)
	}
	if popularity < th.Popularity {
		recs = append(recs, RecPopularity)
	}
	if diversity < th.Diversity {
		recs = append(recs, RecDiversity)
	}
	if flow < th.Flow {
		recs = append(recs, RecFlow)
	}
	return recs
}

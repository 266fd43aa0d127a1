package scoring

import (
	"strings"

	"tripscore/internal/models/request_models"
	"tripscore/pkg/utils"
)

const (
	maxTravelPenalty   = 0.2
	maxOpeningPenalty  = 0.2
	maxDurationPenalty = 0.2
	maxPacingPenalty   = 0.2
	maxTotalPenalty    = 0.8
)

// FeasibilityBreakdown lists each penalty term alongside the final score.
type FeasibilityBreakdown struct {
	Score           float64 `json:"score"`
	TravelPenalty   float64 `json:"travel_penalty"`
	OpeningPenalty  float64 `json:"opening_hours_penalty"`
	DurationPenalty float64 `json:"duration_penalty"`
	PacingPenalty   float64 `json:"pacing_penalty"`
	CityHops        int     `json:"city_hops"`
	StateHops       int     `json:"state_hops"`
	TotalHours      float64 `json:"total_hours"`
	DistinctDays    int     `json:"distinct_days"`
}

func ScoreFeasibility(info request_models.ItineraryInfo, cfg Config) float64 {
	return AnalyzeFeasibility(info, cfg).Score
}

// AnalyzeFeasibility applies the additive penalty model. Empty itineraries
// score 0 and single stops score 1 with no penalties recorded.
func AnalyzeFeasibility(info request_models.ItineraryInfo, cfg Config) FeasibilityBreakdown {
	stops := info.VisitedPlaces
	switch len(stops) {
	case 0:
		return FeasibilityBreakdown{Score: 0}
	case 1:
		return FeasibilityBreakdown{Score: 1}
	}

	var b FeasibilityBreakdown
	n := len(stops)

	firstCity, firstState := stops[0].City, stops[0].State
	for _, s := range stops {
		if s.City != firstCity {
			b.CityHops++
		}
		if s.State != firstState {
			b.StateHops++
		}
	}
	if b.CityHops+b.StateHops > max(1, n/2) {
		b.TravelPenalty = maxTravelPenalty
	}

	for _, s := range stops {
		if s.PlannedTime == "" || s.OpeningHours == "" {
			continue
		}
		planned, ok := utils.ParseClock(strings.TrimSpace(s.PlannedTime))
		if !ok {
			continue
		}
		openMin, closeMin, ok := utils.ParseOpeningHours(s.OpeningHours)
		if !ok {
			continue
		}
		if !utils.WithinOpeningHours(planned, openMin, closeMin) {
			b.OpeningPenalty += maxOpeningPenalty / float64(n)
		}
	}
	b.OpeningPenalty = min(b.OpeningPenalty, maxOpeningPenalty)

	perDay := make(map[int]int, n)
	for _, s := range stops {
		if s.TypicalDurationHours != nil {
			b.TotalHours += *s.TypicalDurationHours
		}
		perDay[s.Day()]++
	}
	b.DistinctDays = len(perDay)

	// daily capacity still applies when an explicit total is given but not exceeded
	planned := info.PlannedTotalHours
	if planned != nil && *planned > 0 && b.TotalHours > *planned {
		b.DurationPenalty = maxDurationPenalty
	} else if b.TotalHours > cfg.DailyHourCapacity*float64(b.DistinctDays) {
		b.DurationPenalty = maxDurationPenalty
	}

	for _, count := range perDay {
		if count > cfg.MaxStopsPerDay {
			b.PacingPenalty = maxPacingPenalty
			break
		}
	}

	total := min(b.TravelPenalty+b.OpeningPenalty+b.DurationPenalty+b.PacingPenalty, maxTotalPenalty)
	b.Score = round3(1 - total)
	return b
}

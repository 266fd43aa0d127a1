package scoring

import (
	"strings"

	"tripscore/internal/models/request_models"
)

const (
	categoryTarget = 5
	tagTarget      = 8
)

func ScoreDiversity(info request_models.ItineraryInfo) float64 {
	stops := info.VisitedPlaces
	if len(stops) < 2 {
		return 0
	}

	categories := make(map[string]struct{})
	tags := make(map[string]struct{})
	for _, s := range stops {
		if c := strings.ToLower(strings.TrimSpace(s.Category)); c != "" {
			categories[c] = struct{}{}
		}
		for _, t := range request_models.NormalizeTags(s.Tags) {
			tags[t] = struct{}{}
		}
	}

	catScore := min(float64(len(categories))/categoryTarget, 1.0)
	tagScore := min(float64(len(tags))/tagTarget, 1.0)

	return round3(0.7*catScore + 0.3*tagScore)
}

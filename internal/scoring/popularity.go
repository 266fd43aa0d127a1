package scoring

import "tripscore/internal/models/request_models"

// ScorePopularity blends normalised popularity (60%) with normalised rating
// (40%). Zero values stay in the denominator.
func ScorePopularity(info request_models.ItineraryInfo, cfg Config) float64 {
	stops := info.VisitedPlaces
	if len(stops) == 0 {
		return 0
	}

	var popSum, ratingSum float64
	for _, s := range stops {
		popSum += s.PopularityScore
		ratingSum += s.AverageRating
	}

	n := float64(len(stops))
	avgPop := popSum / n / cfg.MaxPopularity
	avgRating := ratingSum / n / cfg.MaxRating

	return round3(clamp01(0.6*avgPop + 0.4*avgRating))
}

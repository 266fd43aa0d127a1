package scoring

import "math"

// Sub-score names as they appear in ScoreResult.Scores.
const (
	ComponentFeasibility         = "feasibility"
	ComponentPopularity          = "popularity"
	ComponentDiversity           = "diversity"
	ComponentFlow                = "flow"
	ComponentPreferenceAlignment = "preference_alignment"
)

// Weights are applied as given; they are not normalised.
type Weights struct {
	Feasibility         float64 `koanf:"feasibility" validate:"gte=0"`
	Popularity          float64 `koanf:"popularity" validate:"gte=0"`
	Diversity           float64 `koanf:"diversity" validate:"gte=0"`
	Flow                float64 `koanf:"flow" validate:"gte=0"`
	PreferenceAlignment float64 `koanf:"preference_alignment" validate:"gte=0"`
}

func (w Weights) ToMap() map[string]float64 {
	return map[string]float64{
		ComponentFeasibility:         w.Feasibility,
		ComponentPopularity:          w.Popularity,
		ComponentDiversity:           w.Diversity,
		ComponentFlow:                w.Flow,
		ComponentPreferenceAlignment: w.PreferenceAlignment,
	}
}

type GradeThresholds struct {
	Excellent float64 `koanf:"excellent" validate:"gte=0,lte=1"`
	Good      float64 `koanf:"good" validate:"gte=0,lte=1"`
	Decent    float64 `koanf:"decent" validate:"gte=0,lte=1"`
}

// RecommendationThresholds: a sub-score strictly below its threshold fires
// the matching recommendation.
type RecommendationThresholds struct {
	Feasibility float64 `koanf:"feasibility" validate:"gte=0,lte=1"`
	Popularity  float64 `koanf:"popularity" validate:"gte=0,lte=1"`
	Diversity   float64 `koanf:"diversity" validate:"gte=0,lte=1"`
	Flow        float64 `koanf:"flow" validate:"gte=0,lte=1"`
}

type Config struct {
	Weights         Weights                  `koanf:"weights"`
	Grades          GradeThresholds          `koanf:"grades"`
	Recommendations RecommendationThresholds `koanf:"recommendations"`

	MaxPopularity     float64 `koanf:"max_popularity" validate:"gt=0"`
	MaxRating         float64 `koanf:"max_rating" validate:"gt=0"`
	NeutralPreference float64 `koanf:"neutral_preference" validate:"gte=0,lte=1"`
	DailyHourCapacity float64 `koanf:"daily_hour_capacity" validate:"gt=0"`
	MaxStopsPerDay    int     `koanf:"max_stops_per_day" validate:"gte=1"`
}

func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Feasibility:         0.3,
			Popularity:          0.25,
			Diversity:           0.2,
			Flow:                0.15,
			PreferenceAlignment: 0.1,
		},
		Grades: GradeThresholds{
			Excellent: 0.85,
			Good:      0.70,
			Decent:    0.50,
		},
		Recommendations: RecommendationThresholds{
			Feasibility: 0.7,
			Popularity:  0.6,
			Diversity:   0.5,
			Flow:        0.5,
		},
		MaxPopularity:     10,
		MaxRating:         5,
		NeutralPreference: 0.7,
		DailyHourCapacity: 10,
		MaxStopsPerDay:    5,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}

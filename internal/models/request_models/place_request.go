package request_models

type CreatePlaceRequest struct {
	Name                 string   `json:"name" validate:"required"`
	Description          string   `json:"description"`
	Category             string   `json:"category"`
	Location             string   `json:"location"`
	City                 string   `json:"city"`
	State                string   `json:"state"`
	PopularityScore      float64  `json:"popularity_score" validate:"gte=0"`
	AverageRating        float64  `json:"average_rating" validate:"gte=0,lte=5"`
	NumReviews           int      `json:"num_reviews" validate:"gte=0"`
	TypicalDurationHours *float64 `json:"typical_duration_hours" validate:"omitempty,gt=0"`
	OpeningHours         string   `json:"opening_hours"`
	PeakHours            string   `json:"peak_hours"`
	CrowdLevel           string   `json:"crowd_level"`
	PriceRange           string   `json:"price_range"`
	Features             []string `json:"features"`
	Tags                 Tags     `json:"tags"`
}

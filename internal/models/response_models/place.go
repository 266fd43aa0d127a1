package response_models

type Place struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description,omitempty"`
	Category             string   `json:"category,omitempty"`
	City                 string   `json:"city,omitempty"`
	State                string   `json:"state,omitempty"`
	PopularityScore      float64  `json:"popularity_score"`
	AverageRating        float64  `json:"average_rating"`
	NumReviews           int      `json:"num_reviews"`
	TypicalDurationHours *float64 `json:"typical_duration_hours,omitempty"`
	OpeningHours         string   `json:"opening_hours,omitempty"`
	PeakHours            string   `json:"peak_hours,omitempty"`
	CrowdLevel           string   `json:"crowd_level,omitempty"`
	PriceRange           string   `json:"price_range,omitempty"`
	Features             []string `json:"features,omitempty"`
	Tags                 []string `json:"tags,omitempty"`
}

// PlaceMatch pairs a catalog place with its squared L2 distance to the query.
// Lower is closer; the number is not a similarity percentage.
type PlaceMatch struct {
	Place    Place   `json:"place"`
	Distance float64 `json:"distance"`
}

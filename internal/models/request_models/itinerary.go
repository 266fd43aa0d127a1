package request_models

// VisitedPlace is one stop of an itinerary, in visit order.
type VisitedPlace struct {
	PlaceID              string   `json:"place_id,omitempty"`
	Name                 string   `json:"name"`
	Category             string   `json:"category,omitempty"`
	City                 string   `json:"city,omitempty"`
	State                string   `json:"state,omitempty"`
	PopularityScore      float64  `json:"popularity_score"`
	AverageRating        float64  `json:"average_rating"`
	TypicalDurationHours *float64 `json:"typical_duration_hours,omitempty"`
	OpeningHours         string   `json:"opening_hours,omitempty"`
	Tags                 Tags     `json:"tags,omitempty"`

	PlannedDay         int      `json:"planned_day,omitempty" validate:"gte=0"`
	PlannedTime        string   `json:"planned_time,omitempty"`
	SemanticMatchScore *float64 `json:"semantic_match_score,omitempty"`
}

// Day returns the planned day, defaulting to 1 when unset.
func (v VisitedPlace) Day() int {
	if v.PlannedDay < 1 {
		return 1
	}
	return v.PlannedDay
}

type ItineraryInfo struct {
	VisitedPlaces       []VisitedPlace `json:"visited_places" validate:"dive"`
	PlannedTotalHours   *float64       `json:"planned_total_hours,omitempty" validate:"omitempty,gte=0"`
	PreferenceAlignment *float64       `json:"preference_alignment,omitempty" validate:"omitempty,gte=0,lte=1"`
}

const EntityLabelLocation = "LOCATION"

// Entity is a typed span produced by the entity-extraction collaborator.
type Entity struct {
	Text  string `json:"text" validate:"required"`
	Label string `json:"label" validate:"required"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// ScoreRequest carries either a pre-built itinerary or the text and entity
// spans to build one from.
type ScoreRequest struct {
	Text      string         `json:"text"`
	Entities  []Entity       `json:"entities" validate:"dive"`
	Itinerary *ItineraryInfo `json:"itinerary,omitempty"`
}

package db_models

import "github.com/lib/pq"

// Place is a reference catalog entry. Name is unique across the catalog.
type Place struct {
	BaseModel
	Name                 string `gorm:"uniqueIndex;not null"`
	Description          string
	Category             string
	Location             string
	City                 string
	State                string
	PopularityScore      float64 `gorm:"default:0"`
	AverageRating        float64 `gorm:"default:0"`
	NumReviews           int     `gorm:"default:0"`
	TypicalDurationHours *float64
	OpeningHours         string
	PeakHours            string
	CrowdLevel           string
	PriceRange           string
	Features             pq.StringArray `gorm:"type:text[]"`
	Tags                 pq.StringArray `gorm:"type:text[]"`
}

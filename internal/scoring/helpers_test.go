package scoring

import "tripscore/internal/models/request_models"

func ptr(v float64) *float64 { return &v }

func stop(city, state string) request_models.VisitedPlace {
	return request_models.VisitedPlace{Name: city, City: city, State: state}
}

func itinerary(stops ...request_models.VisitedPlace) request_models.ItineraryInfo {
	return request_models.ItineraryInfo{VisitedPlaces: stops}
}

// landmarkTrip is the Agra -> Mumbai -> Jaipur sample, all on day 1.
func landmarkTrip() request_models.ItineraryInfo {
	return request_models.ItineraryInfo{
		VisitedPlaces: []request_models.VisitedPlace{
			{
				Name: "Taj Mahal", Category: "Historical Monument", City: "Agra", State: "Uttar Pradesh",
				PopularityScore: 9.7, AverageRating: 4.7, TypicalDurationHours: ptr(2),
				OpeningHours: "06:00-19:00", PlannedTime: "12:00", PlannedDay: 1,
				Tags: request_models.Tags{"unesco", "architecture", "mausoleum"},
			},
			{
				Name: "Gateway of India", Category: "Monument", City: "Mumbai", State: "Maharashtra",
				PopularityScore: 8.9, AverageRating: 4.5, TypicalDurationHours: ptr(1),
				OpeningHours: "24 hours", PlannedTime: "15:00", PlannedDay: 1,
				Tags: request_models.Tags{"waterfront", "historical", "colonial"},
			},
			{
				Name: "Hawa Mahal", Category: "Palace", City: "Jaipur", State: "Rajasthan",
				PopularityScore: 8.5, AverageRating: 4.3, TypicalDurationHours: ptr(1.5),
				OpeningHours: "09:00-17:00", PlannedTime: "16:00", PlannedDay: 1,
				Tags: request_models.Tags{"heritage", "jaipur"},
			},
		},
		PlannedTotalHours: ptr(5),
	}
}

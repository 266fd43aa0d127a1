package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"tripscore/internal/models/request_models"
)

func TestFeasibility_TrivialCases(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.0, ScoreFeasibility(itinerary(), cfg))
	assert.Equal(t, 1.0, ScoreFeasibility(itinerary(stop("Agra", "Uttar Pradesh")), cfg))
}

func TestFeasibility_LandmarkTripBreakdown(t *testing.T) {
	b := AnalyzeFeasibility(landmarkTrip(), DefaultConfig())

	// every planned time is inside its window, 4.5h fits the 5h plan, 3 stops on day 1
	assert.Equal(t, 0.0, b.OpeningPenalty)
	assert.Equal(t, 0.0, b.DurationPenalty)
	assert.Equal(t, 0.0, b.PacingPenalty)

	// two city hops plus two state hops against a threshold of max(1, 3/2)
	assert.Equal(t, 2, b.CityHops)
	assert.Equal(t, 2, b.StateHops)
	assert.Equal(t, 0.2, b.TravelPenalty)
	assert.InDelta(t, 4.5, b.TotalHours, 1e-9)
	assert.Equal(t, 0.8, b.Score)
}

func TestFeasibility_SameCityTripIsFullyFeasible(t *testing.T) {
	info := landmarkTrip()
	for i := range info.VisitedPlaces {
		info.VisitedPlaces[i].City = "Jaipur"
		info.VisitedPlaces[i].State = "Rajasthan"
	}
	assert.Equal(t, 1.0, ScoreFeasibility(info, DefaultConfig()))
}

func TestFeasibility_OpeningHoursViolation(t *testing.T) {
	a := stop("Jaipur", "Rajasthan")
	a.OpeningHours = "09:00-17:00"
	a.PlannedTime = "20:00"
	b := stop("Jaipur", "Rajasthan")

	br := AnalyzeFeasibility(itinerary(a, b), DefaultConfig())
	assert.InDelta(t, 0.1, br.OpeningPenalty, 1e-9)
	assert.Equal(t, 0.9, br.Score)
}

func TestFeasibility_OpeningHoursBoundsInclusive(t *testing.T) {
	a := stop("Jaipur", "Rajasthan")
	a.OpeningHours = "09:00-17:00"
	a.PlannedTime = "17:00"
	b := stop("Jaipur", "Rajasthan")
	b.OpeningHours = "09:00 - 17:00"
	b.PlannedTime = "09:00"

	assert.Equal(t, 1.0, ScoreFeasibility(itinerary(a, b), DefaultConfig()))
}

func TestFeasibility_OvernightHoursCountAsViolation(t *testing.T) {
	a := stop("Goa", "Goa")
	a.OpeningHours = "18:00-02:00"
	a.PlannedTime = "20:00"
	b := stop("Goa", "Goa")

	br := AnalyzeFeasibility(itinerary(a, b), DefaultConfig())
	assert.InDelta(t, 0.1, br.OpeningPenalty, 1e-9)
	assert.Equal(t, 0.9, br.Score)
}

func TestFeasibility_MalformedFieldsAreSkipped(t *testing.T) {
	cases := []struct{ hours, planned string }{
		{"24 hours", "03:00"},
		{"9am-5pm", "20:00"},
		{"09:00-17:00", "noon"},
		{"09:00-17:00-18:00", "20:00"},
		{"", "20:00"},
		{"09:00-17:00", ""},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s@%s", tc.hours, tc.planned), func(t *testing.T) {
			a := stop("Jaipur", "Rajasthan")
			a.OpeningHours = tc.hours
			a.PlannedTime = tc.planned
			b := stop("Jaipur", "Rajasthan")

			assert.Equal(t, 1.0, ScoreFeasibility(itinerary(a, b), DefaultConfig()))
		})
	}
}

func TestFeasibility_DurationOverrunAgainstPlannedTotal(t *testing.T) {
	a := stop("Delhi", "Delhi")
	a.TypicalDurationHours = ptr(3)
	b := stop("Delhi", "Delhi")
	b.TypicalDurationHours = ptr(3)

	info := itinerary(a, b)
	info.PlannedTotalHours = ptr(5)
	br := AnalyzeFeasibility(info, DefaultConfig())
	assert.Equal(t, 0.2, br.DurationPenalty)
	assert.Equal(t, 0.8, br.Score)

	// zero is treated as not given, so the daily capacity fallback applies
	info.PlannedTotalHours = ptr(0)
	assert.Equal(t, 1.0, ScoreFeasibility(info, DefaultConfig()))
}

func TestFeasibility_DailyCapacityAppliesUnderGenerousPlannedTotal(t *testing.T) {
	a := stop("Delhi", "Delhi")
	a.TypicalDurationHours = ptr(13)
	b := stop("Delhi", "Delhi")
	b.TypicalDurationHours = ptr(12)

	info := itinerary(a, b)
	info.PlannedTotalHours = ptr(50)
	br := AnalyzeFeasibility(info, DefaultConfig())
	assert.InDelta(t, 25.0, br.TotalHours, 1e-9)
	assert.Equal(t, 0.2, br.DurationPenalty)
	assert.Equal(t, 0.8, br.Score)

	// two days give 20h of capacity
	a.TypicalDurationHours = ptr(8)
	b.PlannedDay = 2
	info = itinerary(a, b)
	info.PlannedTotalHours = ptr(50)
	assert.Equal(t, 1.0, ScoreFeasibility(info, DefaultConfig()))
}

func TestFeasibility_DailyCapacityFallback(t *testing.T) {
	a := stop("Delhi", "Delhi")
	a.TypicalDurationHours = ptr(6)
	b := stop("Delhi", "Delhi")
	b.TypicalDurationHours = ptr(6)

	assert.Equal(t, 0.8, ScoreFeasibility(itinerary(a, b), DefaultConfig()))

	b.PlannedDay = 2
	br := AnalyzeFeasibility(itinerary(a, b), DefaultConfig())
	assert.Equal(t, 2, br.DistinctDays)
	assert.Equal(t, 1.0, br.Score)
}

func TestFeasibility_PacingPenalty(t *testing.T) {
	stops := make([]request_models.VisitedPlace, 6)
	for i := range stops {
		stops[i] = stop("Delhi", "Delhi")
	}
	br := AnalyzeFeasibility(itinerary(stops...), DefaultConfig())
	assert.Equal(t, 0.2, br.PacingPenalty)
	assert.Equal(t, 0.8, br.Score)

	stops[5].PlannedDay = 2
	assert.Equal(t, 1.0, ScoreFeasibility(itinerary(stops...), DefaultConfig()))
}

func TestFeasibility_PenaltyFloor(t *testing.T) {
	stops := make([]request_models.VisitedPlace, 6)
	for i := range stops {
		s := stop(fmt.Sprintf("City%d", i), fmt.Sprintf("State%d", i))
		s.TypicalDurationHours = ptr(3)
		s.OpeningHours = "09:00-10:00"
		s.PlannedTime = "22:00"
		stops[i] = s
	}
	assert.InDelta(t, 0.2, ScoreFeasibility(itinerary(stops...), DefaultConfig()), 1e-9)
}

func TestFeasibility_CustomLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxStopsPerDay = 1
	assert.Equal(t, 0.8, ScoreFeasibility(itinerary(stop("Goa", "Goa"), stop("Goa", "Goa")), cfg))
}

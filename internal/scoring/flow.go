package scoring

import (
	"strings"

	"tripscore/internal/models/request_models"
)

const (
	revisitPenalty   = 0.15
	excessHopPenalty = 0.12
	backtrackBase    = 0.2
	maxFlowPenalty   = 0.8
)

type geoKey struct {
	city  string
	state string
}

func geoOf(s request_models.VisitedPlace) geoKey {
	return geoKey{
		city:  strings.ToLower(strings.TrimSpace(s.City)),
		state: strings.ToLower(strings.TrimSpace(s.State)),
	}
}

// ScoreFlow penalises geographic backtracking. Each distinct location that
// reappears later in the route is penalised once.
//
// The base penalty applies only when hops exceed n-1, so the score drops
// in a step at that threshold.
func ScoreFlow(info request_models.ItineraryInfo) float64 {
	stops := info.VisitedPlaces
	switch len(stops) {
	case 0:
		return 0
	case 1:
		return 1
	}

	hops := 0
	var revisits float64
	last := geoOf(stops[0])
	seen := map[geoKey]struct{}{last: {}}
	penalised := make(map[geoKey]struct{})

	for _, s := range stops[1:] {
		g := geoOf(s)
		if g != last {
			hops++
			last = g
		}
		if _, ok := seen[g]; ok {
			if _, done := penalised[g]; !done {
				revisits += revisitPenalty
				penalised[g] = struct{}{}
			}
		}
		seen[g] = struct{}{}
	}

	minHops := len(stops) - 1
	var total float64
	if hops > minHops {
		excess := float64(hops-minHops) * excessHopPenalty
		total = min(backtrackBase+revisits+excess, maxFlowPenalty)
	} else {
		total = min(revisits, maxFlowPenalty)
	}

	return round3(1 - total)
}

package planner

import "math"

const (
	scoreBase          = 30
	scoreSpeedScale    = 200
	scoreCostScale     = 1500
	scoreCostFloor     = 200
	scoreComfortSingle = 25
	scoreComfortMulti  = 15
	scoreTransferCost  = 5

	MinScore = 45
	MaxScore = 99
)

// Scorer rates itineraries with the occasion-weighted formula.
type Scorer struct {
	tables *Tables
}

func NewScorer(t *Tables) Scorer {
	return Scorer{tables: t}
}

// Weights returns the occasion's weights, or the default weights when the
// occasion is empty or unknown.
func (s Scorer) Weights(occasion string) Weights {
	if w, ok := s.tables.Occasions[occasion]; ok {
		return w
	}
	return s.tables.Occasions[OccasionDefault]
}

// Raw is the unclamped score. Hours are floored at one and cost at 200 so
// very short or cheap trips do not dominate.
func (s Scorer) Raw(it Itinerary, occasion string) float64 {
	w := s.Weights(occasion)
	hours := math.Max(float64(it.TotalDuration)/60, 1)
	cost := math.Max(it.TotalCost, scoreCostFloor)

	comfort := float64(scoreComfortSingle)
	if len(it.Segments) > 1 {
		comfort = scoreComfortMulti
	}
	transfers := len(it.Segments) - 1
	if transfers < 0 {
		transfers = 0
	}

	return scoreBase +
		w.Speed*scoreSpeedScale/hours +
		w.Cost*scoreCostScale/cost +
		w.Comfort*comfort -
		float64(scoreTransferCost*transfers)
}

// Clamp rounds a raw score into [MinScore, MaxScore].
func Clamp(raw float64) int {
	v := int(math.Round(raw))
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}

// Apply sets Score and keeps the raw value for ranking.
func (s Scorer) Apply(it *Itinerary, occasion string) {
	it.rank = s.Raw(*it, occasion)
	it.Score = Clamp(it.rank)
}

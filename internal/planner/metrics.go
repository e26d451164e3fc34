package planner

import (
	"math"
	"strings"
)

const trainSpeedThresholdMinutes = 300

// Metrics annotates itineraries with carbon estimates and categories.
type Metrics struct {
	tables *Tables
}

func NewMetrics(t *Tables) Metrics {
	return Metrics{tables: t}
}

// Carbon sums duration-hours times the per-mode emission factor and rounds
// to one decimal place.
func (m Metrics) Carbon(segments []Segment) float64 {
	return roundTenth(m.carbon(segments))
}

func (m Metrics) carbon(segments []Segment) float64 {
	total := 0.0
	for _, s := range segments {
		factor, ok := m.tables.EmissionFactors[s.Mode]
		if !ok {
			factor = m.tables.DefaultEmissionFactor
		}
		total += float64(s.Duration) / 60 * factor
	}
	return total
}

func (m Metrics) rank(mode string) int {
	if r, ok := m.tables.SpeedRanks[mode]; ok {
		return r
	}
	return math.MaxInt
}

// Faster returns whichever mode ranks ahead in the speed precedence. Unknown
// modes rank behind every known one; ties keep a.
func (m Metrics) Faster(a, b string) string {
	if m.rank(b) < m.rank(a) {
		return b
	}
	return a
}

// EffectiveMode is the mode an itinerary is categorized by: the single
// segment's mode, or the faster of the two.
func (m Metrics) EffectiveMode(segments []Segment) string {
	if len(segments) == 0 {
		return ""
	}
	mode := segments[0].Mode
	for _, s := range segments[1:] {
		mode = m.Faster(mode, s.Mode)
	}
	return mode
}

// Annotate fills Type and CarbonEstimate.
func (m Metrics) Annotate(it *Itinerary) {
	it.Type = Categorize(m.EffectiveMode(it.Segments), it.TotalCost, it.TotalDuration)
	it.carbon = m.carbon(it.Segments)
	it.CarbonEstimate = roundTenth(it.carbon)
}

// Categorize classifies an itinerary from its effective mode and totals.
// Cost does not currently influence the outcome.
func Categorize(mode string, cost float64, duration int) Category {
	switch {
	case strings.Contains(mode, "business_flight"),
		strings.Contains(mode, "1st_ac"),
		strings.Contains(mode, "2nd_ac"),
		strings.Contains(mode, "private_ac_taxi"):
		return CategoryLuxury
	case strings.Contains(mode, "flight"),
		strings.Contains(mode, "metro"),
		strings.Contains(mode, "train") && duration < trainSpeedThresholdMinutes:
		return CategorySpeed
	}
	return CategoryStandard
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

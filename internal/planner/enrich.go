package planner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const lowEmissionThreshold = 20.0

const (
	insightUrgent     = "Prioritized for urgent arrival with fastest corridors"
	insightPunctual   = "Keeps you punctual with minimal transfers and buffer time"
	insightLuxury     = "Premium cabin with assisted boarding and lounge access"
	insightSpeed      = "Earliest arrival using the fastest available segments"
	insightLowCarbon  = "Low-emission journey using electrified and shared modes"
	insightMultimodal = "Optimized multimodal blend balancing cost and comfort"
	insightBalanced   = "Balanced itinerary tuned for everyday travelers"
)

// Enricher attaches presentation fields: insight, coupon, display names and
// booking links. It never touches storage.
type Enricher struct {
	tables *Tables
}

func NewEnricher(t *Tables) Enricher {
	return Enricher{tables: t}
}

// Insight picks exactly one message; the first matching rule wins.
func (e Enricher) Insight(it Itinerary, occasion string) string {
	switch {
	case occasion == "emergency" || occasion == "medical":
		return insightUrgent
	case occasion == "business":
		return insightPunctual
	case it.Type == CategoryLuxury:
		return insightLuxury
	case it.Type == CategorySpeed:
		return insightSpeed
	case it.carbon < lowEmissionThreshold:
		return insightLowCarbon
	case len(it.Segments) > 1:
		return insightMultimodal
	default:
		return insightBalanced
	}
}

func (e Enricher) Coupon(category Category, firstTrip bool) Coupon {
	if firstTrip {
		if c, ok := e.tables.Coupons[CouponFirstTrip]; ok {
			return c
		}
	}
	if c, ok := e.tables.Coupons[string(category)]; ok {
		return c
	}
	return e.tables.Coupons[string(CategoryStandard)]
}

// BookingLinks returns a copy of the partner list for the mode's category.
func (e Enricher) BookingLinks(mode string) []BookingLink {
	links, ok := e.tables.Platforms[ModeCategory(mode)]
	if !ok {
		links = e.tables.Platforms[PlatformsFallback]
	}
	out := make([]BookingLink, len(links))
	copy(out, links)
	return out
}

func (e Enricher) ModeName(mode string) string {
	if name, ok := e.tables.ModeNames[mode]; ok {
		return name
	}
	return humanize(mode)
}

// Decorate fills every presentation field of it in place.
func (e Enricher) Decorate(it *Itinerary, occasion string, firstTrip bool) {
	for i := range it.Segments {
		seg := &it.Segments[i]
		seg.ModeName = e.ModeName(seg.Mode)
		seg.BookingLinks = e.BookingLinks(seg.Mode)
	}
	it.Insight = e.Insight(*it, occasion)
	it.Coupon = e.Coupon(it.Type, firstTrip)
}

// ModeCategory maps a mode tag onto the partner-platform key. Unmatched
// modes map to the bus platforms.
func ModeCategory(mode string) string {
	switch {
	case strings.Contains(mode, "train"):
		return "train"
	case strings.Contains(mode, "flight"):
		return "flight"
	case mode == "bus" || strings.HasSuffix(mode, "_bus"):
		return "bus"
	case strings.Contains(mode, "taxi"):
		return "taxi"
	case mode == "metro":
		return "metro"
	case mode == "auto_rickshaw":
		return "auto"
	}
	return PlatformsFallback
}

func humanize(mode string) string {
	words := strings.Fields(strings.ReplaceAll(mode, "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

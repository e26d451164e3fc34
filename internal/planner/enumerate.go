package planner

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"apt_planner/internal/models"
)

const (
	// DefaultConnectionCap bounds the number of interchange itineraries per search.
	DefaultConnectionCap = 5

	directDeparture     = 8 * time.Hour
	connectingDeparture = 6*time.Hour + 30*time.Minute

	interchangeFallbackName = "Interchange Hub"
)

// Snapshot is the slice of the catalog relevant to one search: routes
// straight from origin to destination, routes leaving the origin and routes
// entering the destination, plus names for candidate interchanges.
type Snapshot struct {
	Direct       []models.Route
	Forward      []models.Route
	Inbound      []models.Route
	Interchanges map[string]string
}

// Enumerator turns a catalog snapshot into raw itineraries. Segments carry
// mode, endpoints, duration, cost and clock times; metrics, scores and
// presentation fields are filled in later.
type Enumerator struct {
	ConnectionCap  int
	SampleFallback bool
	NewID          func() string
}

func (e Enumerator) id() string {
	if e.NewID != nil {
		return e.NewID()
	}
	return uuid.NewString()
}

func (e Enumerator) connectionCap() int {
	if e.ConnectionCap <= 0 {
		return DefaultConnectionCap
	}
	return e.ConnectionCap
}

// Enumerate returns the direct itineraries followed by at most ConnectionCap
// connecting itineraries.
func (e Enumerator) Enumerate(origin, destination models.Location, date time.Time, snap Snapshot) []Itinerary {
	if origin.ID == destination.ID {
		return []Itinerary{}
	}

	itineraries := make([]Itinerary, 0, len(snap.Direct)+e.connectionCap())
	for _, r := range sortedByID(snap.Direct) {
		if r.OriginID != origin.ID || r.DestinationID != destination.ID {
			continue
		}
		itineraries = append(itineraries, e.direct(r, origin.Name, destination.Name, date))
	}

	itineraries = append(itineraries, e.connecting(origin, destination, date, snap)...)

	if len(itineraries) == 0 && e.SampleFallback {
		return e.samples(origin.Name, destination.Name, date)
	}
	return itineraries
}

func (e Enumerator) direct(r models.Route, from, to string, date time.Time) Itinerary {
	seg := newSegment(r.TransportMode, from, to, r.DurationMinutes, r.BaseCost, date.Add(directDeparture))
	return Itinerary{
		ID:            e.id(),
		Segments:      []Segment{seg},
		TotalDuration: seg.Duration,
		TotalCost:     seg.Cost,
	}
}

func (e Enumerator) connecting(origin, destination models.Location, date time.Time, snap Snapshot) []Itinerary {
	limit := e.connectionCap()
	if len(snap.Forward) == 0 || len(snap.Inbound) == 0 {
		return nil
	}

	byOrigin := make(map[string][]models.Route)
	for _, s := range sortedByID(snap.Inbound) {
		if s.DestinationID != destination.ID {
			continue
		}
		byOrigin[s.OriginID] = append(byOrigin[s.OriginID], s)
	}

	var out []Itinerary
	for _, f := range sortedByID(snap.Forward) {
		if len(out) >= limit {
			break
		}
		if f.OriginID != origin.ID || f.DestinationID == origin.ID || f.DestinationID == destination.ID {
			continue
		}
		hub, ok := snap.Interchanges[f.DestinationID]
		if !ok || hub == "" {
			hub = interchangeFallbackName
		}
		for _, s := range byOrigin[f.DestinationID] {
			if len(out) >= limit {
				break
			}
			out = append(out, e.twoLeg(
				legSpec{mode: f.TransportMode, duration: f.DurationMinutes, cost: f.BaseCost},
				legSpec{mode: s.TransportMode, duration: s.DurationMinutes, cost: s.BaseCost},
				origin.Name, hub, destination.Name, date,
			))
		}
	}
	return out
}

type legSpec struct {
	mode     string
	duration int
	cost     float64
}

func (e Enumerator) twoLeg(first, second legSpec, from, via, to string, date time.Time) Itinerary {
	s1 := newSegment(first.mode, from, via, first.duration, first.cost, date.Add(connectingDeparture))
	s2 := newSegment(second.mode, via, to, second.duration, second.cost, s1.ArrivalAt.Add(LayoverMinutes*time.Minute))
	return Itinerary{
		ID:            e.id(),
		Segments:      []Segment{s1, s2},
		TotalDuration: s1.Duration + s2.Duration + LayoverMinutes,
		TotalCost:     s1.Cost + s2.Cost,
	}
}

// samples are illustrative itineraries for demo catalogs with no coverage
// between the requested endpoints.
func (e Enumerator) samples(from, to string, date time.Time) []Itinerary {
	return []Itinerary{
		e.twoLeg(
			legSpec{mode: "non_ac_bus", duration: 90, cost: 300},
			legSpec{mode: "3rd_ac_train", duration: 180, cost: 800},
			from, "Bagya Nagar", to, date,
		),
		e.twoLeg(
			legSpec{mode: "shared_taxi", duration: 60, cost: 250},
			legSpec{mode: "metro", duration: 45, cost: 50},
			from, "Sriharipuram", to, date,
		),
	}
}

func newSegment(mode, from, to string, duration int, cost float64, departure time.Time) Segment {
	if duration < 0 {
		duration = 0
	}
	if cost < 0 {
		cost = 0
	}
	arrival := departure.Add(time.Duration(duration) * time.Minute)
	return Segment{
		Mode:        mode,
		From:        from,
		To:          to,
		Duration:    duration,
		Cost:        cost,
		Departure:   departure.Format(clockLayout),
		Arrival:     arrival.Format(clockLayout),
		DepartureAt: departure,
		ArrivalAt:   arrival,
	}
}

func sortedByID(routes []models.Route) []models.Route {
	out := make([]models.Route, len(routes))
	copy(out, routes)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ParseTravelDate parses a YYYY-MM-DD date as midnight wall-clock time.
func ParseTravelDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

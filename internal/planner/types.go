package planner

import (
	"errors"
	"time"

	"apt_planner/internal/models"
)

var (
	// ErrInvalidEndpoint is returned when the origin or destination does not
	// resolve to a catalog location.
	ErrInvalidEndpoint = errors.New("invalid origin or destination")
	// ErrInvalidRequest covers malformed input such as an unparseable date.
	ErrInvalidRequest = errors.New("invalid route request")
	// ErrLocationNotFound is what a Catalog returns for an unknown location id.
	ErrLocationNotFound = errors.New("location not found")
)

// Category is the coarse classification used for UI filtering.
type Category string

const (
	CategoryLuxury   Category = "luxury"
	CategorySpeed    Category = "speed"
	CategoryStandard Category = "standard"
)

const (
	dateLayout     = "2006-01-02"
	clockLayout    = "03:04 PM"
	LayoverMinutes = 30
)

// Request is a single route search.
type Request struct {
	OriginID      string `json:"originId" binding:"required"`
	DestinationID string `json:"destinationId" binding:"required"`
	TravelDate    string `json:"travelDate" binding:"required"`
	Occasion      string `json:"occasion"`
	FirstTrip     bool   `json:"isFirstTrip"`
}

type Segment struct {
	Mode         string        `json:"mode"`
	ModeName     string        `json:"modeName"`
	From         string        `json:"from"`
	To           string        `json:"to"`
	Duration     int           `json:"duration"`
	Cost         float64       `json:"cost"`
	Departure    string        `json:"departure"`
	Arrival      string        `json:"arrival"`
	BookingLinks []BookingLink `json:"bookingLinks"`

	DepartureAt time.Time `json:"-"`
	ArrivalAt   time.Time `json:"-"`
}

// Itinerary is one candidate journey of one or two segments.
type Itinerary struct {
	ID             string    `json:"id"`
	Type           Category  `json:"type"`
	Segments       []Segment `json:"segments"`
	TotalDuration  int       `json:"totalDuration"`
	TotalCost      float64   `json:"totalCost"`
	CarbonEstimate float64   `json:"carbonEstimate"`
	Score          int       `json:"score"`
	Insight        string    `json:"insight"`
	Coupon         Coupon    `json:"coupon"`

	// unclamped score, used for ranking
	rank float64
	// unrounded carbon, used by the low-emission insight
	carbon float64
}

// Result is the ranked output of Plan. Origin and Destination are the
// resolved endpoints so callers can persist names alongside ids.
type Result struct {
	Routes      []Itinerary     `json:"routes"`
	Origin      models.Location `json:"-"`
	Destination models.Location `json:"-"`
}


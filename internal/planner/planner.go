package planner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options configure a Planner. Zero values fall back to defaults.
type Options struct {
	ConnectionCap  int
	SampleFallback bool
	Tables         *Tables
	Logger         logrus.FieldLogger
	NewID          func() string
}

// Planner turns a route request into a ranked list of itineraries.
type Planner struct {
	catalog    Catalog
	enumerator Enumerator
	metrics    Metrics
	scorer     Scorer
	enricher   Enricher
	log        logrus.FieldLogger
}

func New(catalog Catalog, opts Options) *Planner {
	tables := opts.Tables
	if tables == nil {
		tables = DefaultTables()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Planner{
		catalog: catalog,
		enumerator: Enumerator{
			ConnectionCap:  opts.ConnectionCap,
			SampleFallback: opts.SampleFallback,
			NewID:          opts.NewID,
		},
		metrics:  NewMetrics(tables),
		scorer:   NewScorer(tables),
		enricher: NewEnricher(tables),
		log:      log,
	}
}

// Plan resolves the endpoints, reads the relevant catalog slice and returns
// the scored, enriched itineraries ordered best first.
func (p *Planner) Plan(ctx context.Context, req Request) (*Result, error) {
	originID := strings.TrimSpace(req.OriginID)
	destinationID := strings.TrimSpace(req.DestinationID)
	if originID == "" || destinationID == "" {
		return nil, ErrInvalidEndpoint
	}
	date, err := ParseTravelDate(req.TravelDate)
	if err != nil {
		return nil, fmt.Errorf("%w: travel date %q", ErrInvalidRequest, req.TravelDate)
	}

	origin, err := p.catalog.Location(ctx, originID)
	if err != nil {
		return nil, endpointError("origin", originID, err)
	}
	destination, err := p.catalog.Location(ctx, destinationID)
	if err != nil {
		return nil, endpointError("destination", destinationID, err)
	}

	snap, err := fetchSnapshot(ctx, p.catalog, origin.ID, destination.ID)
	if err != nil {
		return nil, err
	}

	itineraries := p.enumerator.Enumerate(origin, destination, date, snap)
	for i := range itineraries {
		it := &itineraries[i]
		p.metrics.Annotate(it)
		p.scorer.Apply(it, req.Occasion)
		p.enricher.Decorate(it, req.Occasion, req.FirstTrip)
	}
	Rank(itineraries)

	p.log.WithFields(logrus.Fields{
		"origin":      origin.Name,
		"destination": destination.Name,
		"date":        req.TravelDate,
		"occasion":    req.Occasion,
		"routes":      len(itineraries),
	}).Debug("planned routes")

	return &Result{Routes: itineraries, Origin: origin, Destination: destination}, nil
}

func endpointError(side, id string, err error) error {
	if errors.Is(err, ErrLocationNotFound) {
		return fmt.Errorf("%w: unknown %s %q", ErrInvalidEndpoint, side, id)
	}
	return err
}

// Rank orders itineraries by raw score descending, then shorter duration,
// then id.
func Rank(its []Itinerary) {
	sort.SliceStable(its, func(i, j int) bool {
		a, b := its[i], its[j]
		if a.rank != b.rank {
			return a.rank > b.rank
		}
		if a.TotalDuration != b.TotalDuration {
			return a.TotalDuration < b.TotalDuration
		}
		return a.ID < b.ID
	})
}

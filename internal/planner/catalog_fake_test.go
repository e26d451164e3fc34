package planner

import (
	"context"
	"fmt"
	"sync"

	"apt_planner/internal/models"
)

// memCatalog is an in-memory Catalog for planner tests.
type memCatalog struct {
	mu        sync.Mutex
	locations map[string]models.Location
	routes    []models.Route
	failOn    string
	err       error
	calls     map[string]int
}

func newMemCatalog(locs ...models.Location) *memCatalog {
	c := &memCatalog{locations: map[string]models.Location{}, calls: map[string]int{}}
	for _, l := range locs {
		c.locations[l.ID] = l
	}
	return c
}

func (c *memCatalog) add(id, from, to, mode string, minutes int, cost float64) {
	c.routes = append(c.routes, models.Route{
		ID: id, OriginID: from, DestinationID: to, TransportMode: mode,
		DurationMinutes: minutes, BaseCost: cost,
	})
}

func (c *memCatalog) hit(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[name]++
	if c.failOn == name {
		return c.err
	}
	return nil
}

func (c *memCatalog) Location(_ context.Context, id string) (models.Location, error) {
	if err := c.hit("Location"); err != nil {
		return models.Location{}, err
	}
	l, ok := c.locations[id]
	if !ok {
		return models.Location{}, fmt.Errorf("location %s: %w", id, ErrLocationNotFound)
	}
	return l, nil
}

func (c *memCatalog) LocationsByID(_ context.Context, ids []string) ([]models.Location, error) {
	if err := c.hit("LocationsByID"); err != nil {
		return nil, err
	}
	var out []models.Location
	for _, id := range ids {
		if l, ok := c.locations[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func (c *memCatalog) filter(keep func(models.Route) bool) []models.Route {
	var out []models.Route
	for _, r := range c.routes {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (c *memCatalog) DirectRoutes(_ context.Context, originID, destinationID string) ([]models.Route, error) {
	if err := c.hit("DirectRoutes"); err != nil {
		return nil, err
	}
	return c.filter(func(r models.Route) bool {
		return r.OriginID == originID && r.DestinationID == destinationID
	}), nil
}

func (c *memCatalog) RoutesFrom(_ context.Context, originID string) ([]models.Route, error) {
	if err := c.hit("RoutesFrom"); err != nil {
		return nil, err
	}
	return c.filter(func(r models.Route) bool { return r.OriginID == originID }), nil
}

func (c *memCatalog) RoutesTo(_ context.Context, destinationID string) ([]models.Route, error) {
	if err := c.hit("RoutesTo"); err != nil {
		return nil, err
	}
	return c.filter(func(r models.Route) bool { return r.DestinationID == destinationID }), nil
}

func loc(id, name string) models.Location {
	return models.Location{ID: id, Name: name, LocationType: models.LocationCity}
}

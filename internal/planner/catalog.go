package planner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"apt_planner/internal/models"
)

// Catalog is the read side of the location and route store. Location
// returns ErrLocationNotFound (possibly wrapped) for unknown ids.
type Catalog interface {
	Location(ctx context.Context, id string) (models.Location, error)
	LocationsByID(ctx context.Context, ids []string) ([]models.Location, error)
	DirectRoutes(ctx context.Context, originID, destinationID string) ([]models.Route, error)
	RoutesFrom(ctx context.Context, originID string) ([]models.Route, error)
	RoutesTo(ctx context.Context, destinationID string) ([]models.Route, error)
}

// fetchSnapshot issues the three route reads concurrently and then resolves
// interchange names. The first read error is returned as is.
func fetchSnapshot(ctx context.Context, c Catalog, originID, destinationID string) (Snapshot, error) {
	var snap Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		routes, err := c.DirectRoutes(gctx, originID, destinationID)
		snap.Direct = routes
		return err
	})
	g.Go(func() error {
		routes, err := c.RoutesFrom(gctx, originID)
		snap.Forward = routes
		return err
	})
	g.Go(func() error {
		routes, err := c.RoutesTo(gctx, destinationID)
		snap.Inbound = routes
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	ids := interchangeIDs(snap, originID, destinationID)
	snap.Interchanges = make(map[string]string, len(ids))
	if len(ids) == 0 {
		return snap, nil
	}
	hubs, err := c.LocationsByID(ctx, ids)
	if err != nil {
		return Snapshot{}, err
	}
	for _, h := range hubs {
		snap.Interchanges[h.ID] = h.Name
	}
	return snap, nil
}

// interchangeIDs lists locations reachable from the origin that also have a
// route into the destination.
func interchangeIDs(snap Snapshot, originID, destinationID string) []string {
	inbound := make(map[string]bool, len(snap.Inbound))
	for _, r := range snap.Inbound {
		inbound[r.OriginID] = true
	}
	seen := make(map[string]bool)
	var ids []string
	for _, r := range snap.Forward {
		id := r.DestinationID
		if id == originID || id == destinationID || seen[id] || !inbound[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"apt_planner/internal/config"
	"apt_planner/internal/models"
	"apt_planner/internal/planner"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repo.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	delhi, mumbai, jaipur models.Location
}

func seedCatalog(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		delhi:  models.Location{Name: "Delhi", LocationType: models.LocationMegaCity},
		mumbai: models.Location{Name: "Mumbai", LocationType: models.LocationMegaCity},
		jaipur: models.Location{Name: "Jaipur", LocationType: models.LocationCity},
	}
	for _, l := range []*models.Location{&f.delhi, &f.mumbai, &f.jaipur} {
		if err := db.Create(l).Error; err != nil {
			t.Fatalf("create location: %v", err)
		}
	}
	routes := []models.Route{
		{OriginID: f.delhi.ID, DestinationID: f.mumbai.ID, TransportMode: "economy_flight", DurationMinutes: 130, BaseCost: 4500},
		{OriginID: f.delhi.ID, DestinationID: f.mumbai.ID, TransportMode: "ac_bus", DurationMinutes: 540, BaseCost: 1800},
		{OriginID: f.delhi.ID, DestinationID: f.jaipur.ID, TransportMode: "ac_bus", DurationMinutes: 300, BaseCost: 600},
		{OriginID: f.jaipur.ID, DestinationID: f.mumbai.ID, TransportMode: "2nd_ac_train", DurationMinutes: 900, BaseCost: 2200},
	}
	if err := db.Create(&routes).Error; err != nil {
		t.Fatalf("create routes: %v", err)
	}
	return f
}

func TestCatalogRepository_Reads(t *testing.T) {
	db := openTestDB(t)
	f := seedCatalog(t, db)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	locs, err := repo.Locations(ctx)
	if err != nil {
		t.Fatalf("Locations: %v", err)
	}
	if len(locs) != 3 || locs[0].Name != "Delhi" || locs[2].Name != "Mumbai" {
		t.Errorf("locations not ordered by name: %+v", locs)
	}

	direct, err := repo.DirectRoutes(ctx, f.delhi.ID, f.mumbai.ID)
	if err != nil || len(direct) != 2 {
		t.Fatalf("DirectRoutes = %d, %v", len(direct), err)
	}
	if direct[0].ID > direct[1].ID {
		t.Error("routes not ordered by id")
	}

	from, _ := repo.RoutesFrom(ctx, f.delhi.ID)
	to, _ := repo.RoutesTo(ctx, f.mumbai.ID)
	if len(from) != 3 || len(to) != 3 {
		t.Errorf("RoutesFrom = %d, RoutesTo = %d", len(from), len(to))
	}

	hubs, err := repo.LocationsByID(ctx, []string{f.jaipur.ID, "not-a-uuid"})
	if err != nil || len(hubs) != 1 || hubs[0].Name != "Jaipur" {
		t.Errorf("LocationsByID = %+v, %v", hubs, err)
	}

	nLocs, nRoutes, err := repo.Counts(ctx)
	if err != nil || nLocs != 3 || nRoutes != 4 {
		t.Errorf("Counts = %d, %d, %v", nLocs, nRoutes, err)
	}
}

func TestCatalogRepository_UnknownLocation(t *testing.T) {
	repo := NewCatalogRepository(openTestDB(t))
	for _, id := range []string{"not-a-uuid", "1b4e28ba-2fa1-11d2-883f-0016d3cca427"} {
		_, err := repo.Location(context.Background(), id)
		if !errors.Is(err, planner.ErrLocationNotFound) {
			t.Errorf("Location(%s) error = %v, want ErrLocationNotFound", id, err)
		}
	}
}

func TestCatalogRepository_DrivesPlanner(t *testing.T) {
	db := openTestDB(t)
	f := seedCatalog(t, db)
	p := planner.New(NewCatalogRepository(db), planner.Options{})

	res, err := p.Plan(context.Background(), planner.Request{
		OriginID: f.delhi.ID, DestinationID: f.mumbai.ID, TravelDate: "2025-03-14", Occasion: "business",
	})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(res.Routes) != 3 {
		t.Fatalf("expected 2 direct and 1 connecting route, got %d", len(res.Routes))
	}
	var viaJaipur bool
	for _, it := range res.Routes {
		if len(it.Segments) == 2 && it.Segments[0].To == "Jaipur" {
			viaJaipur = true
		}
	}
	if !viaJaipur {
		t.Error("connecting itinerary should pass through Jaipur")
	}
}

func TestTripPlanRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewTripPlanRepository(db)
	ctx := context.Background()

	user := "0f8fad5b-d9cb-469f-a165-70867728950e"
	occasion := "emergency"
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		plan := &models.TripPlan{
			OriginID: "o", DestinationID: "d", OriginName: "Delhi", DestinationName: "Mumbai",
			TravelDate: "2025-03-14", TotalCost: 1000, TotalDuration: 300,
			RouteDetails: datatypes.JSON(`{"segments":[]}`),
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		if i%4 == 0 {
			plan.UserID = &user
			plan.Occasion = &occasion
		}
		if err := repo.Create(ctx, plan); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	recent, err := repo.Recent(ctx, "", 10)
	if err != nil || len(recent) != 10 {
		t.Fatalf("Recent = %d, %v", len(recent), err)
	}
	if !recent[0].CreatedAt.After(recent[9].CreatedAt) {
		t.Error("recent plans not newest first")
	}

	mine, err := repo.Recent(ctx, user, 10)
	if err != nil || len(mine) != 3 {
		t.Errorf("Recent(user) = %d, %v", len(mine), err)
	}
	n, err := repo.CountByUser(ctx, user)
	if err != nil || n != 3 {
		t.Errorf("CountByUser = %d, %v", n, err)
	}
}

func TestAlertRepository_Active(t *testing.T) {
	repo := NewAlertRepository(openTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	for _, a := range []*models.ServiceAlert{
		{Title: "Fog", Description: "Flights delayed", Severity: "high", ValidTo: now.Add(2 * time.Hour)},
		{Title: "Works", Description: "Track maintenance", Severity: "low", ValidTo: now.Add(-time.Hour)},
	} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	active, err := repo.Active(ctx, now)
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if len(active) != 1 || active[0].Title != "Fog" {
		t.Errorf("active alerts = %+v", active)
	}
	if active[0].ValidFrom.IsZero() {
		t.Error("ValidFrom should default on create")
	}
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	u := &models.User{Name: "Asha", Email: " Asha@Example.com ", Password: "hash"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.Role != models.RoleTraveler {
		t.Errorf("role = %s", u.Role)
	}

	dup := &models.User{Name: "Other", Email: "asha@example.com"}
	if err := repo.Create(ctx, dup); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate Create error = %v, want ErrEmailTaken", err)
	}

	got, err := repo.ByEmail(ctx, "ASHA@example.com")
	if err != nil || got.ID != u.ID {
		t.Errorf("ByEmail = %+v, %v", got, err)
	}
	if _, err := repo.ByID(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("ByID(missing) error = %v", err)
	}

	again, err := repo.FirstOrCreate(ctx, models.User{Email: "asha@example.com"})
	if err != nil || again.ID != u.ID {
		t.Errorf("FirstOrCreate existing = %+v, %v", again, err)
	}
	fresh, err := repo.FirstOrCreate(ctx, models.User{Email: "dev@apt.local", Name: "Dev"})
	if err != nil || fresh.ID == "" || fresh.ID == u.ID {
		t.Errorf("FirstOrCreate new = %+v, %v", fresh, err)
	}
}

func TestMetricsRepository_Dashboard(t *testing.T) {
	db := openTestDB(t)
	metrics, err := NewMetricsRepository(db)
	if err != nil {
		t.Fatalf("NewMetricsRepository: %v", err)
	}
	ctx := context.Background()

	empty, err := metrics.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard on empty db: %v", err)
	}
	if empty.TotalTrips != 0 || empty.LastTripAt != nil || empty.TopOrigin != nil || len(empty.OccasionBreakdown) != 0 {
		t.Errorf("empty dashboard = %+v", empty)
	}

	plans := NewTripPlanRepository(db)
	emergency, leisure := "emergency", "leisure"
	rows := []models.TripPlan{
		{OriginID: "a", DestinationID: "b", OriginName: "Delhi", DestinationName: "Mumbai", TotalCost: 1000, TotalDuration: 100, Occasion: &emergency},
		{OriginID: "a", DestinationID: "c", OriginName: "Delhi", DestinationName: "Pune", TotalCost: 3000, TotalDuration: 300, Occasion: &emergency},
		{OriginID: "d", DestinationID: "b", OriginName: "Chennai", DestinationName: "Mumbai", TotalCost: 2000, TotalDuration: 200, Occasion: &leisure},
	}
	for i := range rows {
		rows[i].TravelDate = "2025-03-14"
		rows[i].RouteDetails = datatypes.JSON(`{}`)
		if err := plans.Create(ctx, &rows[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	m, err := metrics.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if m.TotalTrips != 3 || m.AvgCost != 2000 || m.AvgDuration != 200 {
		t.Errorf("totals = %+v", m)
	}
	if m.OriginCoverage != 2 || m.DestinationCoverage != 2 || m.EmergencyTrips != 2 {
		t.Errorf("coverage = %d/%d emergency = %d", m.OriginCoverage, m.DestinationCoverage, m.EmergencyTrips)
	}
	if m.LastTripAt == nil {
		t.Error("LastTripAt missing")
	}
	if len(m.OccasionBreakdown) != 2 || m.OccasionBreakdown[0].Occasion != "emergency" || m.OccasionBreakdown[0].TripCount != 2 {
		t.Errorf("breakdown = %+v", m.OccasionBreakdown)
	}
	if m.TopOrigin == nil || *m.TopOrigin != "Delhi" || m.TopDestination == nil || *m.TopDestination != "Mumbai" {
		t.Errorf("top = %v / %v", m.TopOrigin, m.TopDestination)
	}
}

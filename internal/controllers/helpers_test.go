package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"apt_planner/internal/config"
	"apt_planner/internal/middleware"
	"apt_planner/internal/models"
	"apt_planner/internal/repository"
	"apt_planner/internal/seed"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.Configure("controller-test-secret", time.Hour)
}

type testEnv struct {
	db      *gorm.DB
	catalog *repository.CatalogRepository
	trips   *repository.TripPlanRepository
	alerts  *repository.AlertRepository
	users   *repository.UserRepository
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := seed.Run(context.Background(), db, time.Now().UTC()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return testEnv{
		db:      db,
		catalog: repository.NewCatalogRepository(db),
		trips:   repository.NewTripPlanRepository(db),
		alerts:  repository.NewAlertRepository(db),
		users:   repository.NewUserRepository(db),
	}
}

func (e testEnv) location(t *testing.T, name string) models.Location {
	t.Helper()
	var l models.Location
	if err := e.db.First(&l, "name = ?", name).Error; err != nil {
		t.Fatalf("location %s: %v", name, err)
	}
	return l
}

func (e testEnv) tripCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(&models.TripPlan{}).Count(&n).Error; err != nil {
		t.Fatalf("count trip plans: %v", err)
	}
	return n
}

// do sends body as JSON. A non-empty token is sent as a bearer header.
func do(r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

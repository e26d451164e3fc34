package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGenerateAndValidateToken(t *testing.T) {
	Configure("test-secret", time.Hour)

	token, err := GenerateToken("user-1", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := ValidateToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	Configure("test-secret", time.Hour)
	claims := Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if _, err := ValidateToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/private", RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	r.GET("/admin", RequireAuthWithRole("admin"), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/maybe", OptionalAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "user="+UserID(c))
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	Configure("test-secret", time.Hour)
	r := newAuthRouter()
	token, _ := GenerateToken("user-7", "traveler")

	tests := []struct {
		name   string
		path   string
		setup  func(*http.Request)
		status int
		body   string
	}{
		{"missing", "/private", func(*http.Request) {}, http.StatusUnauthorized, ""},
		{"bearer", "/private", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK, "user-7"},
		{"cookie", "/private", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: TokenCookie, Value: token}) }, http.StatusOK, "user-7"},
		{"garbage", "/private", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized, ""},
		{"wrong role", "/admin", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, http.StatusForbidden, ""},
		{"optional anonymous", "/maybe", func(*http.Request) {}, http.StatusOK, "user="},
		{"optional bad token", "/maybe", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusOK, "user="},
		{"optional user", "/maybe", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK, "user=user-7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}

func TestRequireAuthWithRole_Admin(t *testing.T) {
	Configure("test-secret", time.Hour)
	r := newAuthRouter()
	token, _ := GenerateToken("root", "admin")

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Errorf("admin request = %d %q", w.Code, w.Body.String())
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://apt.example.com/"}))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"http://localhost:5173", true},
		{"https://apt.example.com", true},
		{"https://preview-123.vercel.app", true},
		{"http://192.168.1.20:8080", true},
		{"http://10.0.0.5:5173", true},
		{"https://evil.example.org", false},
		{"http://10.attacker.example", false},
		{"http://192.168.attacker.example:8080", false},
		{"https://10.0.0.5", false},
		{"http://8.8.8.8", false},
		{"http://preview.vercel.app.evil.example", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", tt.origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		got := w.Header().Get("Access-Control-Allow-Origin") == tt.origin
		if got != tt.allowed {
			t.Errorf("origin %s allowed = %v, want %v (status %d)", tt.origin, got, tt.allowed, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("request without Origin = %d", w.Code)
	}
}

func TestOriginChecker(t *testing.T) {
	allowed := OriginChecker(nil)
	tests := map[string]bool{
		"http://10.0.0.5:5173":           true,
		"http://192.168.1.20":            true,
		"https://apt-planner.vercel.app": true,
		"http://10.attacker.example":     false,
		"http://192.168.evil.com":        false,
		"https://vercel.app.evil.com":    false,
		"not a url":                      false,
		"":                               false,
	}
	for origin, want := range tests {
		if got := allowed(origin); got != want {
			t.Errorf("OriginChecker(%q) = %v, want %v", origin, got, want)
		}
	}
}

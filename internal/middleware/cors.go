package middleware

import (
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:8080",
}

// CORS allows the configured origins plus the local dev servers, any
// *.vercel.app preview and private-network hosts used for device testing.
func CORS(extraOrigins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowOriginFunc = OriginChecker(extraOrigins)
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.MaxAge = 12 * time.Hour
	return cors.New(config)
}

// OriginChecker reports whether a browser origin may call the API. The
// websocket upgrader shares it with CORS.
func OriginChecker(extraOrigins []string) func(origin string) bool {
	allowed := make(map[string]bool, len(defaultOrigins)+len(extraOrigins))
	for _, o := range append(append([]string{}, defaultOrigins...), extraOrigins...) {
		allowed[strings.TrimRight(o, "/")] = true
	}
	return func(origin string) bool {
		return allowed[origin] || originAllowed(origin)
	}
}

func originAllowed(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	host := u.Hostname()
	switch u.Scheme {
	case "https":
		return strings.HasSuffix(host, ".vercel.app")
	case "http":
		ip := net.ParseIP(host)
		return ip != nil && ip.IsPrivate()
	}
	return false
}

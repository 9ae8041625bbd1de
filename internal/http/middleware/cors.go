package middleware

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://localhost:8080",
	"http://127.0.0.1:8080",
}

// CORS allows the given origins, or the local dev servers when none are set.
func CORS(origins []string) gin.HandlerFunc {
	cfg := corsConfig(origins)
	if err := cfg.Validate(); err != nil {
		log.Printf("warning: invalid CORS origins %v: %v; using defaults", origins, err)
		cfg = corsConfig(nil)
	}
	return cors.New(cfg)
}

// Origins returns the configured origins, or the local dev servers when none
// are set.
func Origins(origins []string) []string {
	if len(origins) == 0 {
		return defaultOrigins
	}
	return origins
}

func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:     Origins(origins),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
}

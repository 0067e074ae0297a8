// Package httpapi is the operational HTTP sidecar: health probes, the
// Prometheus scrape endpoint, and a small debug surface over the live
// topics. The product API is gRPC; nothing here serves fixture data.
package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	corslib "github.com/rs/cors"

	"github.com/kelmensah/afcon-data/internal/broadcast"
	"github.com/kelmensah/afcon-data/internal/cache"
	"github.com/kelmensah/afcon-data/internal/db"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(pool *db.Pool, appCache cache.Store, b *broadcast.Broadcaster) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(timingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// --- Routes ---

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"name":    "AFCON Data Service",
			"status":  "running",
			"surface": "grpc",
		})
	})

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
		})
		r.Get("/db", func(w http.ResponseWriter, req *http.Request) {
			if err := pool.HealthCheck(req.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
					"status": "unhealthy", "error": err.Error(),
				})
				return
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
		})
		r.Get("/cache", func(w http.ResponseWriter, req *http.Request) {
			if err := appCache.HealthCheck(req.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
					"status": "unhealthy", "error": err.Error(),
				})
				return
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
		})
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Debug: open topics and subscriber counts
	r.Get("/debug/topics", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"topics": b.TopicStats(),
		})
	})

	return r
}

// timingMiddleware adds X-Process-Time header to all responses.
func timingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		w.Header().Set("X-Process-Time", fmt.Sprintf("%.2fms", float64(elapsed.Microseconds())/1000.0))
	})
}

func writeJSON(w http.ResponseWriter, code int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

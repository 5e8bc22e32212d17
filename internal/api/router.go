package api

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/YahelOmesi/Variable-Elimination/internal/api/handlers"
	mw "github.com/YahelOmesi/Variable-Elimination/internal/api/middleware"
	"github.com/YahelOmesi/Variable-Elimination/internal/buildconfig"
	"github.com/YahelOmesi/Variable-Elimination/internal/config"
	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
	"github.com/YahelOmesi/Variable-Elimination/internal/service"
	"github.com/YahelOmesi/Variable-Elimination/internal/store"
)

// App holds the router and background services for lifecycle management.
type App struct {
	Router       *chi.Mux
	Retention    *service.RetentionService
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the router is built from.
type Deps struct {
	Networks       domain.NetworkStore
	Runs           domain.RunStore
	DB             Pinger
	CacheSize      int
	Workers        int
	RetentionDays  int
	APIKey         string
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) (*App, error) {
	return Build(Deps{
		Networks:       store.NewNetworkStore(db),
		Runs:           store.NewRunStore(db),
		DB:             db,
		CacheSize:      config.NetworkCacheSize(),
		Workers:        config.BatchWorkers(),
		RetentionDays:  config.RunRetentionDays(),
		APIKey:         config.APIKey(),
		RateLimitRPS:   config.RateLimitRPS(),
		RateLimitBurst: config.RateLimitBurst(),
	}, logger)
}

// Build wires services, handlers and middleware over deps.
func Build(deps Deps, logger *zap.Logger) (*App, error) {
	networkSvc, err := service.NewNetworkService(deps.Networks, deps.CacheSize, logger)
	if err != nil {
		return nil, err
	}
	inferenceSvc := service.NewInferenceService(networkSvc, deps.Runs, deps.Workers, logger)
	retentionSvc := service.NewRetentionService(deps.Runs, time.Duration(deps.RetentionDays)*24*time.Hour, logger)

	networkHandler := handlers.NewNetworkHandler(networkSvc)
	queryHandler := handlers.NewQueryHandler(inferenceSvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Retention: retentionSvc,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(deps.RateLimitRPS, deps.RateLimitBurst))

	r.Get("/health", healthHandler(deps.DB))
	r.Get("/stats", app.statsHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(deps.APIKey))

		r.Route("/networks", func(r chi.Router) {
			r.Post("/", networkHandler.Create)
			r.Get("/", networkHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", networkHandler.GetByID)
				r.Delete("/", networkHandler.Delete)
				r.Post("/queries", queryHandler.Query)
				r.Post("/batch", queryHandler.Batch)
				r.Post("/compare", queryHandler.Compare)
				r.Get("/runs", queryHandler.History)
			})
		})
	})

	return app, nil
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "ok",
			"version": buildconfig.VersionInfo(),
		})
	}
}

func (app *App) statsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

var (
	_ domain.NetworkStore = (*store.NetworkStore)(nil)
	_ domain.RunStore     = (*store.RunStore)(nil)
	_ Pinger              = (*pgxpool.Pool)(nil)
)

package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Peminatan/internal/config"
	"github.com/MikeSquared-Agency/Peminatan/internal/hermes"
	"github.com/MikeSquared-Agency/Peminatan/internal/scoring"
)

func NewRouter(s *scoring.Scorer, h hermes.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(Metrics)

	cat := NewCatalogHandler(s.Catalog())
	assessment := NewAssessmentHandler(s.Catalog(), h, logger)
	recommend := NewRecommendHandler(s, h, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"Content-Length"},
			MaxAge:         300,
		}))
		r.Use(RateLimitMiddleware(cfg.Server.RateLimitPerMinute))
		if t := cfg.RequestTimeout(); t > 0 {
			r.Use(chiMiddleware.Timeout(t))
		}

		r.Get("/health", cat.Health)
		r.Get("/questions", cat.Questions)
		r.Get("/riasec/descriptions", cat.Descriptions)
		r.Post("/riasec/calculate", assessment.Calculate)
		r.Get("/subjects", cat.Subjects)
		r.Get("/career-packages", cat.CareerPackages)

		r.Post("/recommend", recommend.Recommend)
		r.Post("/saw/calculate", recommend.CalculateSAW)
		r.Post("/bk-advice", recommend.Advice)
	})

	if cfg.Server.StaticDir != "" {
		r.Handle("/*", spaHandler(cfg.Server.StaticDir))
	}

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

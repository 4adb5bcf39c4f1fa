package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/device-benefit-calculator/internal/config"
	"github.com/cmlabs-hris/device-benefit-calculator/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(cfg *config.Config, logger *slog.Logger, comparisonHandler ComparisonHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, "Method not allowed")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/comparisons", func(r chi.Router) {
			r.Get("/", comparisonHandler.CompareQuery)
			r.Post("/", comparisonHandler.Compare)
		})

		r.Route("/tax", func(r chi.Router) {
			r.Get("/", comparisonHandler.ComputeTaxQuery)
			r.Post("/", comparisonHandler.ComputeTax)
		})

		r.Get("/schedule", comparisonHandler.GetSchedule)
	})
	return r
}

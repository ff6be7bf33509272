package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/mkowalczyk/lullaby/docs"
	"github.com/mkowalczyk/lullaby/internal/api/handler"
	"github.com/mkowalczyk/lullaby/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	childHandler      *handler.ChildHandler
	sleepEventHandler *handler.SleepEventHandler
	statsHandler      *handler.StatsHandler
}

func NewRouter(
	childHandler *handler.ChildHandler,
	sleepEventHandler *handler.SleepEventHandler,
	statsHandler *handler.StatsHandler,
) *Router {
	return &Router{
		childHandler:      childHandler,
		sleepEventHandler: sleepEventHandler,
		statsHandler:      statsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Children
		r.Route("/children", func(r chi.Router) {
			r.Post("/", rt.childHandler.Create)
			r.Get("/{childId}", rt.childHandler.GetByID)

			// Sleep events (nested under children)
			r.Route("/{childId}/events", func(r chi.Router) {
				r.Post("/", rt.sleepEventHandler.Create)
				r.Get("/", rt.sleepEventHandler.List)
				r.Patch("/{eventId}", rt.sleepEventHandler.Update)
			})

			// Statistics and plans
			r.Route("/{childId}/sleep", func(r chi.Router) {
				r.Get("/stats", rt.statsHandler.GetStats)
				r.Get("/daily", rt.statsHandler.GetDaily)
				r.Get("/plan", rt.statsHandler.GetPlan)
				r.Post("/plan/feedback", rt.statsHandler.PostFeedback)
			})
		})
	})

	return r
}

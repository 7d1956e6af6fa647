package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/halcyon-ops/hourglass/pkg/usecase"
)

// UseCases bundles the report use cases the HTTP surface depends on.
type UseCases struct {
	Reports       *usecase.Reports
	Dashboard     *usecase.Dashboard
	Tickets       *usecase.Tickets
	ClientReports *usecase.ClientReports
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates the HTTP server with all report routes wired. The two
// core report endpoints live at the root; the dashboard and ticket views sit
// under /api as the browser frontend expects.
func NewServer(ctx context.Context, addr string, uc *UseCases, allowedOrigins []string) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	if len(allowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	h := NewHandler(uc, nil)

	router.Get("/health", handleHealth)
	router.Get("/overtime-summary", h.HandleOvertimeSummary)
	router.Get("/hours-grid", h.HandleHoursGrid)

	router.Route("/api", func(r chi.Router) {
		r.Route("/overtime", func(r chi.Router) {
			r.Get("/hours", h.HandleCurrentOvertime)
			r.Get("/periods", h.HandlePeriods)
		})
		r.Route("/tickets", func(r chi.Router) {
			r.Get("/open", h.HandleOpenTickets)
			r.Get("/closed", h.HandleClosedTickets)
		})
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", h.HandleDashboardStats)
			r.Get("/weekly-activity", h.HandleWeeklyActivity)
			r.Get("/top-clients", h.HandleTopClients)
		})
		r.Get("/clients", h.HandleClients)
		r.Get("/reports/client-hours", h.HandleClientHours)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// Router exposes the underlying handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

package server

import (
	"log/slog"
	"net/http"
	"propSettler/services/parlayService"
	"propSettler/services/settlementService"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers exposes the settlement triggers over HTTP. The cron host (or an
// operator) drives batches through these endpoints.
type Handlers struct {
	Sweeper  *settlementService.Sweeper
	Parlays  *parlayService.Settler
	Log      *slog.Logger
	PageSize int
	Budget   time.Duration
}

func NewRouter(h *Handlers) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/settlement/run", h.RunBatch)
		r.Get("/settlement/stats", h.Stats)
		r.Post("/parlays/settle", h.SettleParlays)
		r.Post("/reconcile", h.Reconcile)
	})

	return r
}

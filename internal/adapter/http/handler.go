package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"outreach-engine/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the use cases, a logger
// and the chi router the routes are registered on.
type Handler struct {
	outreach port.OutreachUseCase
	leads    port.LeadUseCase
	deals    port.DealUseCase
	ready    func(context.Context) error
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. ready backs
// GET /healthz and may be nil.
func NewHandler(
	outreach port.OutreachUseCase,
	leads port.LeadUseCase,
	deals port.DealUseCase,
	ready func(context.Context) error,
	logger *slog.Logger,
) *Handler {
	h := &Handler{outreach: outreach, leads: leads, deals: deals, ready: ready, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Delete("/", h.handleDeleteCampaign)
				r.Get("/prospects", h.handleListProspects)
				r.Post("/prospects", h.handleAddProspect)
				r.Post("/import", h.handleImport)
				r.Get("/queue", h.handleTodayQueue)
				r.Get("/stats", h.handleCampaignStats)
			})
		})

		r.Post("/prospects/{id}/events", h.handleApplyEvent)

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", h.handleListLeads)
			r.Delete("/", h.handleDeleteLeads)
			r.Post("/search", h.handleSearchLeads)
			r.Post("/enrich", h.handleEnrichLeads)
			r.Post("/{id}/verify", h.handleReverifyLead)
			r.Post("/{id}/disqualify", h.handleDisqualifyLead)
			r.Post("/{id}/restore", h.handleRestoreLead)
		})

		r.Route("/deals", func(r chi.Router) {
			r.Post("/", h.handleCreateDeal)
			r.Get("/{id}", h.handleGetDeal)
			r.Post("/{id}/stage", h.handleChangeStage)
			r.Post("/{id}/followups", h.handleAddFollowUp)
			r.Post("/{id}/snooze", h.handleSnooze)
			r.Post("/{id}/unsnooze", h.handleUnsnooze)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.ready(ctx); err != nil {
			h.logger.Warn("health check failed", slog.Any("error", err))
			h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

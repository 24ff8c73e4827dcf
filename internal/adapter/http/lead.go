package httpadapter

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/port"
)

type idsRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type enrichRequest struct {
	LeadIDs []uuid.UUID `json:"lead_ids"`
}

// handleListLeads supports ?available=true, ?has_website=true and ?limit=N.
func (h *Handler) handleListLeads(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f port.LeadFilter
	var err error
	if f.Available, err = boolParam(q.Get("available"), "available"); err != nil {
		h.writeError(w, r, err)
		return
	}
	if f.HasWebsite, err = boolParam(q.Get("has_website"), "has_website"); err != nil {
		h.writeError(w, r, err)
		return
	}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			h.writeError(w, r, domain.NewValidation("limit", "must be a non-negative integer"))
			return
		}
		f.Limit = n
	}

	leads, err := h.leads.ListLeads(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if leads == nil {
		leads = []domain.StoredLead{}
	}
	h.writeJSON(w, http.StatusOK, leads)
}

func boolParam(s, field string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, domain.NewValidation(field, "must be a boolean")
	}
	return b, nil
}

func (h *Handler) handleDeleteLeads(w http.ResponseWriter, r *http.Request) {
	var req idsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if len(req.IDs) == 0 {
		h.writeError(w, r, domain.NewValidation("ids", "at least one id is required"))
		return
	}
	res, err := h.leads.DeleteLeads(r.Context(), req.IDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleSearchLeads(w http.ResponseWriter, r *http.Request) {
	var q port.SearchQuery
	if err := decodeJSON(w, r, &q); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.leads.SearchLeads(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleEnrichLeads enriches the listed leads, or every available lead when
// the body is empty.
func (h *Handler) handleEnrichLeads(w http.ResponseWriter, r *http.Request) {
	var req enrichRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	res, err := h.leads.BulkEnrich(r.Context(), req.LeadIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleReverifyLead(w http.ResponseWriter, r *http.Request) {
	h.leadAction(w, r, h.leads.Reverify)
}

func (h *Handler) handleDisqualifyLead(w http.ResponseWriter, r *http.Request) {
	h.leadAction(w, r, h.leads.Disqualify)
}

func (h *Handler) handleRestoreLead(w http.ResponseWriter, r *http.Request) {
	h.leadAction(w, r, h.leads.Restore)
}

func (h *Handler) leadAction(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID) (domain.StoredLead, error)) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	l, err := fn(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, l)
}

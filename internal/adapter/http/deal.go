package httpadapter

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/port"
)

type stageRequest struct {
	Stage   domain.Stage `json:"stage"`
	Confirm bool         `json:"confirm"`
}

type followUpRequest struct {
	Note string `json:"note"`
}

type stageResponse struct {
	Status        string      `json:"status"`
	FollowupCount int         `json:"followup_count"`
	Remaining     int         `json:"remaining,omitempty"`
	Deal          domain.Deal `json:"deal"`
}

func (h *Handler) handleCreateDeal(w http.ResponseWriter, r *http.Request) {
	var req port.CreateDealReq
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	d, err := h.deals.CreateDeal(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, d)
}

func (h *Handler) handleGetDeal(w http.ResponseWriter, r *http.Request) {
	h.dealAction(w, r, h.deals.GetDeal)
}

// handleChangeStage answers 409 with status needs_confirmation when the
// guard holds the change back; the client resends with confirm set to
// close anyway.
func (h *Handler) handleChangeStage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req stageRequest
	if err = decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.deals.ChangeStage(r.Context(), id, req.Stage, req.Confirm)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	body := stageResponse{
		Status:        "allowed",
		FollowupCount: res.FollowupCount,
		Remaining:     res.Remaining,
		Deal:          res.Deal,
	}
	status := http.StatusOK
	if res.NeedsConfirmation {
		body.Status = "needs_confirmation"
		status = http.StatusConflict
	}
	h.writeJSON(w, status, body)
}

func (h *Handler) handleAddFollowUp(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req followUpRequest
	if r.ContentLength != 0 {
		if err = decodeJSON(w, r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	d, err := h.deals.AddFollowUp(r.Context(), id, req.Note)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, d)
}

func (h *Handler) handleSnooze(w http.ResponseWriter, r *http.Request) {
	h.dealAction(w, r, h.deals.Snooze)
}

func (h *Handler) handleUnsnooze(w http.ResponseWriter, r *http.Request) {
	h.dealAction(w, r, h.deals.Unsnooze)
}

func (h *Handler) dealAction(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID) (domain.Deal, error)) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	d, err := fn(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, d)
}

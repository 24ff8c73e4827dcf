package httpadapter

import (
	"net/http"

	"outreach-engine/internal/core/port"
)

// handleApplyEvent runs a lifecycle event. Illegal events and stale
// expected versions answer 409 so the client can refetch and retry.
func (h *Handler) handleApplyEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req port.EventRequest
	if err = decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	v, err := h.outreach.ApplyEvent(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, v)
}

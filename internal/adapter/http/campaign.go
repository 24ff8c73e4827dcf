package httpadapter

import (
	"encoding/csv"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/port"
)

const maxCSVBody = 10 << 20

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CreateCampaignReq
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.outreach.CreateCampaign(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	cs, err := h.outreach.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if cs == nil {
		cs = []domain.Campaign{}
	}
	h.writeJSON(w, http.StatusOK, cs)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.outreach.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.outreach.DeleteCampaign(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListProspects(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	ps, err := h.outreach.ListProspects(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if ps == nil {
		ps = []port.ProspectView{}
	}
	h.writeJSON(w, http.StatusOK, ps)
}

func (h *Handler) handleAddProspect(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var contact domain.Contact
	if err = decodeJSON(w, r, &contact); err != nil {
		h.writeError(w, r, err)
		return
	}
	v, err := h.outreach.AddProspect(r.Context(), id, contact)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, v)
}

// handleImport accepts either a JSON ImportRequest or a text/csv body
// whose first record is the header row.
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req port.ImportRequest
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "text/csv" {
		req.Rows, err = parseCSV(http.MaxBytesReader(w, r.Body, maxCSVBody))
	} else {
		err = decodeJSON(w, r, &req)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.outreach.ImportLeads(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// parseCSV turns a CSV document into rows keyed by the header names.
// Blank lines are skipped and short records leave trailing columns empty.
func parseCSV(body io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(body)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.NewValidation("body", "empty CSV")
	}
	if err != nil {
		return nil, domain.NewValidation("body", "invalid CSV: "+err.Error())
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")))
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.NewValidation("body", "invalid CSV: "+err.Error())
		}
		row := make(map[string]string, len(header))
		empty := true
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
				if strings.TrimSpace(rec[i]) != "" {
					empty = false
				}
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, domain.NewValidation("body", "CSV has no data rows")
	}
	return rows, nil
}

func (h *Handler) handleTodayQueue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q, err := h.outreach.TodayQueue(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if q == nil {
		q = []port.ProspectView{}
	}
	h.writeJSON(w, http.StatusOK, q)
}

func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.outreach.CampaignStats(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tapecalc/internal/domain"
	"tapecalc/internal/imperial"
	"tapecalc/internal/layout"
)

// maxBody bounds request bodies.
const maxBody = 64 << 10

// Handler provides the API handlers.
type Handler struct {
	deps Deps
	cfg  RouterConfig
}

// NewHandler returns the API handlers over deps.
func NewHandler(deps Deps, cfg RouterConfig) *Handler {
	cfg.Precision = cfg.Precision.OrDefault()
	return &Handler{deps: deps, cfg: cfg}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// LayoutRequest is a layout.Request plus an optional precision.
type LayoutRequest struct {
	layout.Request
	Precision int `json:"precision,omitempty"`
}

// SaveRequest is the body of POST /api/saved-measurements.
type SaveRequest struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Calculate handles POST /api/calculate.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req domain.CalculateRequest
	if !decode(w, r, &req) {
		return
	}
	calc, err := h.deps.History.Evaluate(r.Context(), req)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, calc)
}

// Layout handles POST /api/layout. Invalid field values give an empty list
// of marks; an unknown mode is a 400.
func (h *Handler) Layout(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if !decode(w, r, &req) {
		return
	}
	precision, err := h.precision(req.Precision)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	plan, err := layout.Build(req.Request, precision)
	if err != nil {
		WriteBadRequest(w, r, err.Error())
		return
	}
	if h.deps.Metrics != nil {
		h.deps.Metrics.LayoutGenerated(string(plan.Mode), len(plan.Marks))
	}
	writeJSON(w, http.StatusOK, domain.NewLayoutResult(plan, h.cfg.Display))
}

// ListHistory handles GET /api/history?limit=N.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			WriteBadRequest(w, r, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	entries, err := h.deps.History.List(r.Context(), limit)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// AddHistory handles POST /api/history.
func (h *Handler) AddHistory(w http.ResponseWriter, r *http.Request) {
	var req domain.NewHistoryEntry
	if !decode(w, r, &req) {
		return
	}
	entry, err := h.deps.History.Record(r.Context(), req)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// ClearHistory handles DELETE /api/history.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.History.Clear(r.Context()); err != nil {
		WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSaved handles GET /api/saved-measurements.
func (h *Handler) ListSaved(w http.ResponseWriter, r *http.Request) {
	items, err := h.deps.Saved.List(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// AddSaved handles POST /api/saved-measurements.
func (h *Handler) AddSaved(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if !decode(w, r, &req) {
		return
	}
	m, err := h.deps.Saved.Save(r.Context(), req.Label, req.Value)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// DeleteSaved handles DELETE /api/saved-measurements/{id}.
func (h *Handler) DeleteSaved(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseMeasurementID(chi.URLParam(r, "id"))
	if err != nil {
		WriteBadRequest(w, r, "invalid id")
		return
	}
	if err := h.deps.Saved.Delete(r.Context(), id); err != nil {
		WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) precision(n int) (imperial.Precision, error) {
	if n == 0 {
		return h.cfg.Precision, nil
	}
	p := imperial.Precision(n)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: precision must be 8, 16 or 32", domain.ErrInvalidRequest)
	}
	return p, nil
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		WriteBadRequest(w, r, "invalid request body")
		return false
	}
	return true
}

package server

import (
	"encoding/json"
	"net/http"
	"propSettler/repo"
	"strconv"
	"time"
)

type reconcileRequest struct {
	Statuses []string `json:"statuses"`
	Sport    string   `json:"sport"`
	From     string   `json:"from"` // RFC3339, optional
	To       string   `json:"to"`
	Limit    int      `json:"limit"`
	Action   string   `json:"action"`
}

func (h *Handlers) RunBatch(w http.ResponseWriter, r *http.Request) {
	batch := 0
	if raw := r.URL.Query().Get("batch"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "batch must be a non-negative integer")
			return
		}
		batch = parsed
	}

	summary, err := h.Sweeper.RunBatch(r.Context(), batch, h.PageSize, h.Budget)
	if err != nil {
		h.Log.Error("batch run failed", "batch", batch, "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Sweeper.Stats()
	if err != nil {
		h.Log.Error("stats query failed", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handlers) SettleParlays(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Parlays.SettlePending(r.Context())
	if err != nil {
		h.Log.Error("parlay settlement failed", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handlers) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req reconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Action == "" {
		respondError(w, http.StatusBadRequest, "action is required")
		return
	}

	filter := repo.PredictionFilter{
		Statuses: req.Statuses,
		Sport:    req.Sport,
		Limit:    req.Limit,
	}
	if req.From != "" {
		from, err := time.Parse(time.RFC3339, req.From)
		if err != nil {
			respondError(w, http.StatusBadRequest, "from must be RFC3339")
			return
		}
		filter.From = &from
	}
	if req.To != "" {
		to, err := time.Parse(time.RFC3339, req.To)
		if err != nil {
			respondError(w, http.StatusBadRequest, "to must be RFC3339")
			return
		}
		filter.To = &to
	}

	summary, err := h.Sweeper.Reconcile(r.Context(), req.Action, filter)
	if err != nil {
		h.Log.Error("reconciliation failed", "action", req.Action, "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

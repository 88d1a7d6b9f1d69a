package http

import (
	"encoding/json"
	"net/http"

	"loan-advisor/observability"
	"loan-advisor/service"
)

type SimulateHandler struct {
	service *service.SimulationService
	metrics *observability.Metrics
}

func NewSimulateHandler(service *service.SimulationService, metrics *observability.Metrics) *SimulateHandler {
	return &SimulateHandler{service: service, metrics: metrics}
}

func (h *SimulateHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.service.Simulate(r.Context(), req.toService())
	if err != nil {
		writeError(w, err)
		return
	}
	h.metrics.Evaluations.WithLabelValues(string(resp.Category)).Add(float64(resp.Count))

	writeJSON(w, http.StatusOK, resp)
}

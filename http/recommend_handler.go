package http

import (
	"encoding/json"
	"net/http"

	"loan-advisor/service"
)

type RecommendHandler struct {
	service *service.RecommendationService
}

func NewRecommendHandler(service *service.RecommendationService) *RecommendHandler {
	return &RecommendHandler{service: service}
}

func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, err)
		return
	}

	rec, err := h.service.Recommend(r.Context(), req.toService())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

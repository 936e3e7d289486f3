package http

import (
	"encoding/json"
	"net/http"

	"btl-agent/service"
)

type StampDutyHandler struct {
	service *service.StampDutyService
}

func NewStampDutyHandler(service *service.StampDutyService) *StampDutyHandler {
	return &StampDutyHandler{service: service}
}

type stampDutyRequest struct {
	Price                float64 `json:"price"`
	IsAdditionalProperty bool    `json:"is_additional_property"`
}

func (h *StampDutyHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req stampDutyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result := h.service.Calculate(req.Price, req.IsAdditionalProperty)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

package http

import (
	"encoding/json"
	"net/http"

	"btl-agent/domain"
	"btl-agent/service"
)

type BTLHandler struct {
	service *service.BTLService
}

func NewBTLHandler(service *service.BTLService) *BTLHandler {
	return &BTLHandler{service: service}
}

func (h *BTLHandler) CalculateMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.BTLInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateMetrics(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

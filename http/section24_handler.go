package http

import (
	"encoding/json"
	"net/http"

	"btl-agent/domain"
	"btl-agent/service"
)

type Section24Handler struct {
	service *service.Section24Service
}

func NewSection24Handler(service *service.Section24Service) *Section24Handler {
	return &Section24Handler{service: service}
}

func (h *Section24Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.Section24Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"btl-agent/domain"
	"btl-agent/repository"
	"btl-agent/service"
)

func newTestAnalysisHandler() *AnalysisHandler {
	repo := repository.NewAnalysisRepositoryMemory()
	cache := repository.NewMockCache()
	btlService := service.NewBTLService(service.NewStampDutyService(), repo, cache)
	analysisService := service.NewAnalysisService(
		btlService,
		service.NewSection24Service(),
		service.NewRiskExtractionService("", ""),
		service.NewYieldService(),
	)
	return NewAnalysisHandler(analysisService)
}

func TestAnalysePropertyHandler_OK(t *testing.T) {

	handler := newTestAnalysisHandler()

	body := []byte(`{
		"property": {
			"address": "Flat 3, 12 Harbour Street",
			"price": 450000,
			"monthly_rent": 1800,
			"tenure": "leasehold",
			"description": "Leasehold with 95 years remaining. Ground rent £350 per annum."
		}
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/property/analyse",
		bytes.NewBuffer(body),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.AnalyseProperty(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var output domain.PropertyAnalysis
	if err := json.NewDecoder(w.Body).Decode(&output); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if output.Metrics.StampDuty != 23_500 {
		t.Errorf("expected stamp duty 23500, got %.2f", output.Metrics.StampDuty)
	}
	if output.Risk == nil {
		t.Errorf("expected a risk report in the response")
	}
}

func TestAnalysePropertyHandler_RequiresJSONContentType(t *testing.T) {

	handler := newTestAnalysisHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/property/analyse",
		bytes.NewBuffer([]byte(`{}`)),
	)

	w := httptest.NewRecorder()
	handler.AnalyseProperty(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415 without a JSON Content-Type, got %d", w.Code)
	}
}

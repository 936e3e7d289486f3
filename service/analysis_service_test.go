package service

import (
	"testing"

	"btl-agent/domain"
)

func newTestAnalysisService() *AnalysisService {
	btl := newTestBTLService(&MockAnalysisRepository{})
	return NewAnalysisService(
		btl,
		NewSection24Service(),
		NewRiskExtractionService("", ""),
		NewYieldService(),
	)
}

func TestAnalyseProperty_FullPipeline(t *testing.T) {

	service := newTestAnalysisService()

	result, err := service.AnalyseProperty(domain.AnalysisRequest{
		Property: domain.Property{
			Address:     "Flat 3, 12 Harbour Street",
			Price:       450_000,
			MonthlyRent: 1_800,
			Tenure:      "leasehold",
			Description: "Leasehold with 95 years remaining. Ground rent £350 per annum.",
		},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Metrics.MortgageAmount != 337_500 {
		t.Errorf("expected mortgage 337500, got %.2f", result.Metrics.MortgageAmount)
	}
	if result.Metrics.StampDuty != 23_500 {
		t.Errorf("expected stamp duty 23500, got %.2f", result.Metrics.StampDuty)
	}

	// Defaults: 75% LTV at 5% interest-only gives £16,875 a year of
	// finance cost; operating expenses are the non-mortgage lines.
	if result.Section24.CompanyTax != 0 {
		t.Errorf("loss-making company route should owe nothing, got %.2f",
			result.Section24.CompanyTax)
	}
	if result.Section24.PersonalTax != 2_817.29 {
		t.Errorf("expected personal tax 2817.29, got %.2f", result.Section24.PersonalTax)
	}

	if result.Risk == nil {
		t.Fatalf("expected a risk report for a described listing")
	}
	if result.Risk.LeaseYears != 95 {
		t.Errorf("expected 95 lease years, got %d", result.Risk.LeaseYears)
	}

	if result.Yield.AnnualYieldPercent != 4.8 {
		t.Errorf("expected 4.8%% projected yield, got %.1f", result.Yield.AnnualYieldPercent)
	}
	if result.Yield.ProjectedAnnualReturn != 5_400 {
		t.Errorf("expected projected return 5400, got %.2f", result.Yield.ProjectedAnnualReturn)
	}
}

func TestAnalyseProperty_AssumptionsOverrideListing(t *testing.T) {

	service := newTestAnalysisService()

	result, err := service.AnalyseProperty(domain.AnalysisRequest{
		Property: domain.Property{
			Price:       450_000,
			MonthlyRent: 1_800,
			Description: "Freehold house.",
		},
		Assumptions: domain.BTLInput{
			Price:       400_000,
			MonthlyRent: 1_600,
			LTV:         floatPtr(0.60),
		},
		TaxBand: 0.45,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Metrics.MortgageAmount != 240_000 {
		t.Errorf("expected mortgage on the overridden price, got %.2f",
			result.Metrics.MortgageAmount)
	}
	if result.Metrics.MonthlyGrossRent != 1_600 {
		t.Errorf("expected overridden rent 1600, got %.2f", result.Metrics.MonthlyGrossRent)
	}
}

func TestAnalyseProperty_MissingDescriptionDegradesRiskOnly(t *testing.T) {

	service := newTestAnalysisService()

	result, err := service.AnalyseProperty(domain.AnalysisRequest{
		Property: domain.Property{
			Price:       300_000,
			MonthlyRent: 1_400,
		},
	})

	if err != nil {
		t.Fatalf("numeric core should not fail on a missing description: %v", err)
	}
	if result.Risk != nil {
		t.Errorf("expected nil risk report when extraction has nothing to read")
	}
	if result.Metrics.MortgageAmount == 0 {
		t.Errorf("metrics should still be computed")
	}
}

func TestAnalyseProperty_InvalidNumericInputFails(t *testing.T) {

	service := newTestAnalysisService()

	_, err := service.AnalyseProperty(domain.AnalysisRequest{
		Property: domain.Property{Description: "Freehold house, offers invited."},
	})

	if err == nil {
		t.Errorf("expected validation error when no price is available")
	}
}

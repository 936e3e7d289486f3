package service

import (
	"log"

	"btl-agent/domain"
)

// AnalysisService runs the full evaluation pipeline for a listing:
// cash flow from the purchase assumptions, a personal-vs-company tax
// comparison fed from the cash-flow figures, the risk extraction over
// the listing text, and the yield projection on the deposit.
type AnalysisService struct {
	btl       *BTLService
	section24 *Section24Service
	risk      *RiskExtractionService
	yield     *YieldService
}

// NewAnalysisService creates an AnalysisService with its collaborators.
func NewAnalysisService(
	btl *BTLService,
	section24 *Section24Service,
	risk *RiskExtractionService,
	yield *YieldService,
) *AnalysisService {
	return &AnalysisService{
		btl:       btl,
		section24: section24,
		risk:      risk,
		yield:     yield,
	}
}

// AnalyseProperty evaluates a listing end to end. The numeric core
// must succeed; a failed risk extraction only degrades the report to
// nil. Zero-valued price and rent in the assumptions fall back to the
// listing's own figures.
func (s *AnalysisService) AnalyseProperty(req domain.AnalysisRequest) (domain.PropertyAnalysis, error) {
	input := req.Assumptions
	if input.Price == 0 {
		input.Price = req.Property.Price
	}
	if input.MonthlyRent == 0 {
		input.MonthlyRent = req.Property.MonthlyRent
	}

	metrics, err := s.btl.CalculateMetrics(input)
	if err != nil {
		return domain.PropertyAnalysis{}, err
	}

	taxBand := req.TaxBand
	if taxBand == 0 {
		taxBand = DefaultTaxBand
	}

	// The comparator wants finance cost and operating expenses as
	// separate annual figures; the cash-flow model folds both into the
	// monthly expense total.
	annualFinanceCost := roundTo2Decimals(metrics.MonthlyMortgage * 12)
	annualOperatingExpenses := roundTo2Decimals(
		(metrics.MonthlyExpenses.Total - metrics.MonthlyExpenses.Mortgage) * 12)

	section24, err := s.section24.Calculate(domain.Section24Input{
		AnnualRent:        metrics.AnnualGrossRent,
		AnnualFinanceCost: annualFinanceCost,
		AnnualExpenses:    annualOperatingExpenses,
		TaxBand:           taxBand,
	})
	if err != nil {
		return domain.PropertyAnalysis{}, err
	}

	risk, err := s.risk.ExtractRisks(req.Property)
	if err != nil {
		log.Printf("Warning: risk extraction unavailable for %q: %v", req.Property.Address, err)
		risk = nil
	}

	return domain.PropertyAnalysis{
		Property:  req.Property,
		Metrics:   metrics,
		Section24: section24,
		Risk:      risk,
		Yield:     s.yield.ProjectYield(input.Price, metrics.Deposit),
	}, nil
}

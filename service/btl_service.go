package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"btl-agent/domain"
	"btl-agent/repository"
)

// btlAssumptions is the fully-resolved input: every optional field of
// BTLInput replaced by its documented default.
type btlAssumptions struct {
	price                float64
	monthlyRent          float64
	ltv                  float64
	interestRate         float64
	isAdditionalProperty bool
	maintenancePercent   float64
	agentFeePercent      float64
	voidPercent          float64
	annualInsurance      float64
	groundRent           float64
	serviceCharge        float64
}

func resolveAssumptions(input domain.BTLInput) btlAssumptions {
	a := btlAssumptions{
		price:                input.Price,
		monthlyRent:          input.MonthlyRent,
		ltv:                  DefaultLTV,
		interestRate:         DefaultInterestRate,
		isAdditionalProperty: true,
		maintenancePercent:   DefaultMaintenancePercent,
		agentFeePercent:      DefaultAgentFeePercent,
		voidPercent:          DefaultVoidPercent,
		annualInsurance:      input.AnnualInsurance,
		groundRent:           input.GroundRent,
		serviceCharge:        input.ServiceCharge,
	}
	if input.LTV != nil {
		a.ltv = *input.LTV
	}
	if input.InterestRate != nil {
		a.interestRate = *input.InterestRate
	}
	if input.IsAdditionalProperty != nil {
		a.isAdditionalProperty = *input.IsAdditionalProperty
	}
	if input.MaintenancePercent != nil {
		a.maintenancePercent = *input.MaintenancePercent
	}
	if input.AgentFeePercent != nil {
		a.agentFeePercent = *input.AgentFeePercent
	}
	if input.VoidPercent != nil {
		a.voidPercent = *input.VoidPercent
	}
	return a
}

// BTLService runs the buy-to-let cash-flow model. Results are saved to
// the analysis repository and memoized in the cache; neither is
// critical to the calculation.
type BTLService struct {
	stampDuty *StampDutyService
	repo      repository.AnalysisRepository
	cache     repository.CacheRepository
}

// NewBTLService creates a BTLService with its collaborators.
func NewBTLService(
	stampDuty *StampDutyService,
	repo repository.AnalysisRepository,
	cache repository.CacheRepository,
) *BTLService {
	return &BTLService{stampDuty: stampDuty, repo: repo, cache: cache}
}

func validateBTLInput(a btlAssumptions) error {
	if a.price <= 0 {
		return errors.New("invalid price")
	}
	if a.price > MaxPropertyPrice {
		return fmt.Errorf("price exceeds the maximum of £%.0f", MaxPropertyPrice)
	}
	if a.monthlyRent < 0 {
		return errors.New("invalid monthly rent")
	}
	if a.monthlyRent > MaxMonthlyRent {
		return fmt.Errorf("monthly rent exceeds the maximum of £%.0f", MaxMonthlyRent)
	}
	if a.ltv < 0 || a.ltv > 1 {
		return errors.New("ltv must be between 0 and 1")
	}
	if a.interestRate > MaxInterestRate {
		return fmt.Errorf("interest rate exceeds the maximum of %.0f%%", MaxInterestRate*100)
	}
	if a.maintenancePercent < 0 || a.maintenancePercent > 1 {
		return errors.New("maintenance percent must be between 0 and 1")
	}
	if a.agentFeePercent < 0 || a.agentFeePercent > 1 {
		return errors.New("agent fee percent must be between 0 and 1")
	}
	if a.voidPercent < 0 || a.voidPercent > 1 {
		return errors.New("void percent must be between 0 and 1")
	}
	if a.annualInsurance < 0 || a.groundRent < 0 || a.serviceCharge < 0 {
		return errors.New("annual charges must not be negative")
	}
	return nil
}

// CalculateMetrics computes the full cash-flow picture for a purchase.
// Validation runs before any arithmetic; an invalid input returns a
// zero output and an error, never a partial result.
func (s *BTLService) CalculateMetrics(input domain.BTLInput) (domain.BTLOutput, error) {
	a := resolveAssumptions(input)
	if err := validateBTLInput(a); err != nil {
		return domain.BTLOutput{}, err
	}

	cacheKey := btlCacheKey(input)
	if cacheKey != "" {
		if cached, ok := s.cache.Get(cacheKey); ok {
			var out domain.BTLOutput
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return out, nil
			}
		}
	}

	mortgageAmount := roundToPound(a.price * a.ltv)
	deposit := roundToPound(a.price - a.price*a.ltv)

	stampDuty := s.stampDuty.Calculate(a.price, a.isAdditionalProperty)
	totalPurchaseCost := roundToPound(deposit + stampDuty.Total)

	// Interest-only: the principal is never amortised.
	var monthlyMortgage float64
	if mortgageAmount > 0 && a.interestRate > 0 {
		monthlyMortgage = roundTo2Decimals(mortgageAmount * a.interestRate / 12)
	}

	// Line items round to the penny individually before the total is
	// summed and re-rounded, so the total tracks the displayed items
	// rather than the unrounded components.
	expenses := domain.MonthlyExpenses{
		Mortgage:      monthlyMortgage,
		Maintenance:   roundTo2Decimals(a.monthlyRent * a.maintenancePercent),
		AgentFees:     roundTo2Decimals(a.monthlyRent * a.agentFeePercent),
		VoidAllowance: roundTo2Decimals(a.monthlyRent * a.voidPercent),
		Insurance:     roundTo2Decimals(a.annualInsurance / 12),
		GroundRent:    roundTo2Decimals(a.groundRent / 12),
		ServiceCharge: roundTo2Decimals(a.serviceCharge / 12),
	}
	expenses.Total = roundTo2Decimals(expenses.Mortgage + expenses.Maintenance +
		expenses.AgentFees + expenses.VoidAllowance + expenses.Insurance +
		expenses.GroundRent + expenses.ServiceCharge)

	monthlyNetProfit := roundTo2Decimals(a.monthlyRent - expenses.Total)
	annualGrossRent := roundTo2Decimals(a.monthlyRent * 12)
	annualNetProfit := roundTo2Decimals(monthlyNetProfit * 12)

	grossYield := roundTo2Decimals(annualGrossRent / a.price * 100)
	netYield := roundTo2Decimals(annualNetProfit / a.price * 100)
	var returnOnCapital float64
	if totalPurchaseCost > 0 {
		returnOnCapital = roundTo2Decimals(annualNetProfit / totalPurchaseCost * 100)
	}

	output := domain.BTLOutput{
		StampDuty:          stampDuty.Total,
		StampDutyBreakdown: stampDuty,
		Deposit:            deposit,
		MortgageAmount:     mortgageAmount,
		TotalPurchaseCost:  totalPurchaseCost,
		MonthlyMortgage:    monthlyMortgage,
		MonthlyGrossRent:   a.monthlyRent,
		MonthlyExpenses:    expenses,
		MonthlyNetProfit:   monthlyNetProfit,
		AnnualGrossRent:    annualGrossRent,
		AnnualNetProfit:    annualNetProfit,
		GrossYield:         grossYield,
		NetYield:           netYield,
		ReturnOnCapital:    returnOnCapital,
	}

	// Saving the record is not critical to the calculation.
	if err := s.repo.Save(input, output); err != nil {
		log.Printf("Warning: failed to save BTL calculation: %v", err)
	}

	if cacheKey != "" {
		if encoded, err := json.Marshal(output); err == nil {
			if err := s.cache.Set(cacheKey, string(encoded)); err != nil {
				log.Printf("Warning: failed to cache BTL calculation: %v", err)
			}
		}
	}

	return output, nil
}

// btlCacheKey derives a stable cache key from the raw input. An empty
// key disables caching for the call.
func btlCacheKey(input domain.BTLInput) string {
	encoded, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	return "btl:" + string(encoded)
}

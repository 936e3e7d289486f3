package service

import (
	"errors"
	"math"

	"btl-agent/domain"
)

// Income tax bands accepted for the personal route.
var validTaxBands = map[float64]bool{
	0.20: true,
	0.40: true,
	0.45: true,
}

// Section24Service compares the tax bill on rental profit held
// personally against the same profit in a limited company. Stateless.
type Section24Service struct{}

// NewSection24Service creates a new Section24Service.
func NewSection24Service() *Section24Service {
	return &Section24Service{}
}

// Calculate runs both routes and reports the difference.
//
// Personal route: since Section 24, finance costs are not deductible
// from rental profit; the taxpayer instead receives a credit of 20% of
// the finance cost whatever their own band. The bill is clamped at
// zero — the credit never turns into a refund.
//
// Company route: finance costs remain fully deductible and the
// remaining profit is taxed at the corporation rate; a loss means zero
// tax, never a refund.
//
// AnnualSaving is personal minus company and its sign is meaningful:
// for a basic-rate taxpayer the personal route is often cheaper and
// the saving comes out negative. No "best of both" is applied.
func (s *Section24Service) Calculate(input domain.Section24Input) (domain.Section24Output, error) {
	if input.AnnualRent < 0 {
		return domain.Section24Output{}, errors.New("invalid annual rent")
	}
	if input.AnnualFinanceCost < 0 {
		return domain.Section24Output{}, errors.New("invalid annual finance cost")
	}
	if input.AnnualExpenses < 0 {
		return domain.Section24Output{}, errors.New("invalid annual expenses")
	}
	if !validTaxBands[input.TaxBand] {
		return domain.Section24Output{}, errors.New("tax band must be 0.20, 0.40 or 0.45")
	}

	rentalProfit := input.AnnualRent - input.AnnualExpenses
	taxBeforeCredit := rentalProfit * input.TaxBand
	credit := input.AnnualFinanceCost * Section24CreditRate
	personalTax := math.Max(0, taxBeforeCredit-credit)

	companyProfit := input.AnnualRent - input.AnnualExpenses - input.AnnualFinanceCost
	var companyTax float64
	if companyProfit > 0 {
		companyTax = companyProfit * CorporationTaxRate
	}

	personalTax = roundTo2Decimals(personalTax)
	companyTax = roundTo2Decimals(companyTax)

	return domain.Section24Output{
		PersonalTax:  personalTax,
		CompanyTax:   companyTax,
		AnnualSaving: roundTo2Decimals(personalTax - companyTax),
		Breakdown: domain.Section24Breakdown{
			PersonalRentalProfit:    roundTo2Decimals(rentalProfit),
			PersonalTaxBeforeCredit: roundTo2Decimals(taxBeforeCredit),
			Section24TaxCredit:      roundTo2Decimals(credit),
			CompanyProfit:           roundTo2Decimals(companyProfit),
		},
	}, nil
}

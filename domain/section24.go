package domain

// Section24Input holds the annual figures for a personal-vs-company tax
// comparison. TaxBand is the landlord's marginal income tax rate and
// must be 0.20, 0.40 or 0.45.
type Section24Input struct {
	AnnualRent        float64 `json:"annual_rent"`
	AnnualFinanceCost float64 `json:"annual_finance_cost"`
	AnnualExpenses    float64 `json:"annual_expenses,omitempty"`
	TaxBand           float64 `json:"tax_band"`
}

// Section24Breakdown exposes the intermediate figures so the headline
// numbers can be audited.
type Section24Breakdown struct {
	PersonalRentalProfit    float64 `json:"personal_rental_profit"`
	PersonalTaxBeforeCredit float64 `json:"personal_tax_before_credit"`
	Section24TaxCredit      float64 `json:"section24_tax_credit"`
	CompanyProfit           float64 `json:"company_profit"`
}

// Section24Output compares the personal and limited-company tax bills.
// AnnualSaving is personal minus company: positive means the company
// route is cheaper, negative means the personal route wins. Both tax
// figures are clamped at zero, never refunds.
type Section24Output struct {
	PersonalTax  float64            `json:"personal_tax"`
	CompanyTax   float64            `json:"company_tax"`
	AnnualSaving float64            `json:"annual_saving"`
	Breakdown    Section24Breakdown `json:"breakdown"`
}

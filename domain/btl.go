package domain

// BTLInput carries the purchase and letting assumptions for a buy-to-let
// calculation. Pointer fields distinguish "omitted" (service default
// applies) from an explicit zero: an LTV of 0 is a valid cash purchase.
// All rates and percentage fields are decimals in [0,1].
type BTLInput struct {
	Price       float64 `json:"price"`
	MonthlyRent float64 `json:"monthly_rent"`

	LTV                  *float64 `json:"ltv,omitempty"`
	InterestRate         *float64 `json:"interest_rate,omitempty"`
	IsAdditionalProperty *bool    `json:"is_additional_property,omitempty"`
	MaintenancePercent   *float64 `json:"maintenance_percent,omitempty"`
	AgentFeePercent      *float64 `json:"agent_fee_percent,omitempty"`
	VoidPercent          *float64 `json:"void_percent,omitempty"`

	AnnualInsurance float64 `json:"annual_insurance,omitempty"`
	GroundRent      float64 `json:"ground_rent,omitempty"`
	ServiceCharge   float64 `json:"service_charge,omitempty"`
}

// MonthlyExpenses breaks the monthly outgoings into line items.
// Each item is rounded to the penny before Total is summed and
// re-rounded, so Total can differ by a few pence from summing the
// unrounded components.
type MonthlyExpenses struct {
	Mortgage      float64 `json:"mortgage"`
	Maintenance   float64 `json:"maintenance"`
	AgentFees     float64 `json:"agent_fees"`
	VoidAllowance float64 `json:"void_allowance"`
	Insurance     float64 `json:"insurance"`
	GroundRent    float64 `json:"ground_rent"`
	ServiceCharge float64 `json:"service_charge"`
	Total         float64 `json:"total"`
}

// BTLOutput is the full cash-flow picture for a buy-to-let purchase.
// Deposit, MortgageAmount, TotalPurchaseCost and StampDuty are whole
// pounds; the rest of the monetary fields are pennies; yields are
// percentages to two decimal places.
type BTLOutput struct {
	StampDuty          float64         `json:"stamp_duty"`
	StampDutyBreakdown StampDutyResult `json:"stamp_duty_breakdown"`

	Deposit           float64 `json:"deposit"`
	MortgageAmount    float64 `json:"mortgage_amount"`
	TotalPurchaseCost float64 `json:"total_purchase_cost"`

	MonthlyMortgage  float64         `json:"monthly_mortgage"`
	MonthlyGrossRent float64         `json:"monthly_gross_rent"`
	MonthlyExpenses  MonthlyExpenses `json:"monthly_expenses"`
	MonthlyNetProfit float64         `json:"monthly_net_profit"`

	AnnualGrossRent float64 `json:"annual_gross_rent"`
	AnnualNetProfit float64 `json:"annual_net_profit"`

	GrossYield      float64 `json:"gross_yield"`
	NetYield        float64 `json:"net_yield"`
	ReturnOnCapital float64 `json:"return_on_capital"`
}

package service

const (
	// SDLT residential rates (England & NI, additional-property surcharge flat).
	SurchargeRate = 0.03

	// Corporation tax main rate applied to company rental profit.
	CorporationTaxRate = 0.25

	// Section 24 restricts finance-cost relief to a basic-rate credit
	// regardless of the landlord's own band.
	Section24CreditRate = 0.20

	// BTL defaults applied when the caller omits a field.
	DefaultLTV                = 0.75
	DefaultInterestRate       = 0.05
	DefaultMaintenancePercent = 0.10
	DefaultAgentFeePercent    = 0.10
	DefaultVoidPercent        = 0.0833 // roughly one empty month a year

	// Validation ceilings, generous but finite.
	MaxPropertyPrice = 100_000_000.0
	MaxMonthlyRent   = 1_000_000.0
	MaxInterestRate  = 1.0 // 100% annual

	// Lease length below which a remortgage/resale warning is raised.
	ShortLeaseThresholdYears = 80

	// Tax band assumed for a composed analysis when the caller gives none.
	DefaultTaxBand = 0.40
)

// sdltBand is one marginal band of the residential SDLT table.
type sdltBand struct {
	upTo float64 // upper bound, exclusive; 0 means no upper bound
	rate float64
}

// Residential SDLT bands: the rate applies only to the slice of the
// price falling inside the band.
var sdltBands = []sdltBand{
	{upTo: 250_000, rate: 0},
	{upTo: 925_000, rate: 0.05},
	{upTo: 1_500_000, rate: 0.10},
	{upTo: 0, rate: 0.12},
}

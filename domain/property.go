package domain

// Property is the listing payload delivered by the extraction layer.
// Extraction itself (scraping, messaging) happens outside this service;
// callers post the record as JSON.
type Property struct {
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	MonthlyRent float64 `json:"monthly_rent"` // seed estimate, user-adjustable
	Tenure      string  `json:"tenure"`       // "freehold", "leasehold" or empty
	Description string  `json:"description"`
}

// RiskReport holds the lease/charge risk flags extracted from the
// listing description, either by the AI service or the fallback parser.
type RiskReport struct {
	LeaseYears        int     `json:"lease_years"`
	GroundRent        float64 `json:"ground_rent"`
	ReviewPeriod      int     `json:"review_period_years"`
	ServiceCharge     float64 `json:"service_charge"`
	Tenure            string  `json:"tenure"`
	HasDoublingClause bool    `json:"has_doubling_clause"`
	ShortLeaseWarning bool    `json:"short_lease_warning"`
	RedFlagSummary    string  `json:"red_flag_summary"`
}

package domain

import "time"

// AnalysisRequest is the composed-analysis payload: the extracted
// property plus the caller's financing assumptions. A zero Assumptions
// price falls back to the listing price, and a zero monthly rent falls
// back to the listing's rent seed.
type AnalysisRequest struct {
	Property    Property `json:"property"`
	Assumptions BTLInput `json:"assumptions"`
	TaxBand     float64  `json:"tax_band,omitempty"` // defaults to higher rate (0.40)
}

// YieldProjection is the display figure from the yield-projection
// service: a projected annual yield percentage applied to the deposit.
type YieldProjection struct {
	AnnualYieldPercent    float64 `json:"annual_yield_percent"`
	ProjectedAnnualReturn float64 `json:"projected_annual_return"`
}

// PropertyAnalysis is the full evaluation: cash flow, tax comparison,
// risk flags and the yield projection. Risk is nil when extraction
// failed; the numeric results are still valid.
type PropertyAnalysis struct {
	Property  Property        `json:"property"`
	Metrics   BTLOutput       `json:"metrics"`
	Section24 Section24Output `json:"section24"`
	Risk      *RiskReport     `json:"risk,omitempty"`
	Yield     YieldProjection `json:"yield"`
}

// AnalysisRecord is a saved calculation, kept in memory for the
// session. There is no durable persistence.
type AnalysisRecord struct {
	ID        string    `json:"id"`
	Input     BTLInput  `json:"input"`
	Output    BTLOutput `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}

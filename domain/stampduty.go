package domain

// StampDutyResult is the SDLT breakdown for a single purchase.
// Total is always BaseTax + AdditionalSurcharge; EffectiveRate is
// Total/price to basis-point precision (0 for a zero price).
type StampDutyResult struct {
	BaseTax             float64 `json:"base_tax"`
	AdditionalSurcharge float64 `json:"additional_surcharge"`
	Total               float64 `json:"total"`
	EffectiveRate       float64 `json:"effective_rate"`
}

package repository

import "btl-agent/domain"

// AnalysisRepository stores completed BTL calculations for the session.
type AnalysisRepository interface {
	Save(input domain.BTLInput, output domain.BTLOutput) error
	History() []domain.AnalysisRecord
}

package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"btl-agent/domain"
)

// AnalysisRepositoryMemory keeps calculation history in memory only;
// records live for the lifetime of the process.
type AnalysisRepositoryMemory struct {
	mu      sync.Mutex
	records []domain.AnalysisRecord
}

// NewAnalysisRepositoryMemory creates an empty in-memory repository.
func NewAnalysisRepositoryMemory() *AnalysisRepositoryMemory {
	return &AnalysisRepositoryMemory{
		records: []domain.AnalysisRecord{},
	}
}

// Save appends a calculation to the history under a fresh ID.
func (r *AnalysisRepositoryMemory) Save(
	input domain.BTLInput,
	output domain.BTLOutput,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, domain.AnalysisRecord{
		ID:        uuid.NewString(),
		Input:     input,
		Output:    output,
		CreatedAt: time.Now(),
	})
	return nil
}

// History returns a copy of the stored records, oldest first.
func (r *AnalysisRepositoryMemory) History() []domain.AnalysisRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := make([]domain.AnalysisRecord, len(r.records))
	copy(history, r.records)
	return history
}

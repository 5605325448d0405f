package match

import (
	"time"

	"github.com/google/uuid"
)

// Record is the persisted projection of one scored (resume, job) pair.
// Score is the totalPercent/100 fraction. Records for a job are replaced
// wholesale on recompute, never merged.
type Record struct {
	ID        uuid.UUID
	ResumeID  uuid.UUID
	JobID     uuid.UUID
	Score     float64
	CreatedAt time.Time
}

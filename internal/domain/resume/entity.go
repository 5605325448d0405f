package resume

import (
	"time"

	"github.com/google/uuid"
)

// Resume is an uploaded resume with its extracted plain text. Immutable
// after creation except for deletion.
type Resume struct {
	ID          uuid.UUID
	JobSeekerID uuid.UUID
	SourceName  string
	RawText     string
	CreatedAt   time.Time
}

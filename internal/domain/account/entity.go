package account

import (
	"time"

	"github.com/google/uuid"
)

// Role separates the two account kinds: companies post jobs, job seekers
// upload resumes.
type Role string

const (
	RoleCompany   Role = "company"
	RoleJobSeeker Role = "job_seeker"
)

type Company struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type JobSeeker struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

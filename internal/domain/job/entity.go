package job

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const DefaultWeight = 1.0

// Job is a posting created by a company. The requirement fields are
// optional free text; the weights steer the match scoring engine.
type Job struct {
	ID        uuid.UUID
	CompanyID uuid.UUID

	Title          string
	RequiredSkills string
	Degree         string
	Experience     string
	GeneralText    string

	SkillsWeight     float64
	DegreeWeight     float64
	ExperienceWeight float64
	GeneralWeight    float64

	IsOpen    bool
	CreatedAt time.Time
}

// New constructs a posting with defaulted weights. Weights default at
// construction time rather than being inferred downstream.
func New(companyID uuid.UUID, title, generalText string) Job {
	return Job{
		ID:               uuid.New(),
		CompanyID:        companyID,
		Title:            title,
		GeneralText:      generalText,
		SkillsWeight:     DefaultWeight,
		DegreeWeight:     DefaultWeight,
		ExperienceWeight: DefaultWeight,
		GeneralWeight:    DefaultWeight,
		IsOpen:           true,
	}
}

// ClampWeights maps negative and NaN weights to 0 in place.
func (j *Job) ClampWeights() {
	j.SkillsWeight = clampWeight(j.SkillsWeight)
	j.DegreeWeight = clampWeight(j.DegreeWeight)
	j.ExperienceWeight = clampWeight(j.ExperienceWeight)
	j.GeneralWeight = clampWeight(j.GeneralWeight)
}

func clampWeight(w float64) float64 {
	if math.IsNaN(w) || w < 0 {
		return 0
	}
	return w
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"resmatch/internal/domain/job"
)

type JobResponse struct {
	ID             uuid.UUID `json:"id"`
	CompanyID      uuid.UUID `json:"company_id"`
	Title          string    `json:"title"`
	RequiredSkills string    `json:"required_skills,omitempty"`
	Degree         string    `json:"degree,omitempty"`
	Experience     string    `json:"experience,omitempty"`
	GeneralText    string    `json:"general_text,omitempty"`

	SkillsWeight     float64 `json:"skills_weight"`
	DegreeWeight     float64 `json:"degree_weight"`
	ExperienceWeight float64 `json:"experience_weight"`
	GeneralWeight    float64 `json:"general_weight"`

	IsOpen    bool      `json:"is_open"`
	CreatedAt time.Time `json:"created_at"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:               j.ID,
		CompanyID:        j.CompanyID,
		Title:            j.Title,
		RequiredSkills:   j.RequiredSkills,
		Degree:           j.Degree,
		Experience:       j.Experience,
		GeneralText:      j.GeneralText,
		SkillsWeight:     j.SkillsWeight,
		DegreeWeight:     j.DegreeWeight,
		ExperienceWeight: j.ExperienceWeight,
		GeneralWeight:    j.GeneralWeight,
		IsOpen:           j.IsOpen,
		CreatedAt:        j.CreatedAt,
	}
}

func NewJobListResponse(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

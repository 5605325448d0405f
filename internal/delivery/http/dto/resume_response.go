package dto

import (
	"time"

	"github.com/google/uuid"

	"resmatch/internal/domain/resume"
	"resmatch/internal/usecase"
)

type ResumeResponse struct {
	ID         uuid.UUID `json:"id"`
	SourceName string    `json:"source_name,omitempty"`
	TextLength int       `json:"text_length"`
	CreatedAt  time.Time `json:"created_at"`
}

type JobSuggestionResponse struct {
	JobID uuid.UUID `json:"job_id"`
	Title string    `json:"title"`
	Score int       `json:"score"`
}

type UploadResumeResponse struct {
	Resume      ResumeResponse          `json:"resume"`
	TextEmpty   bool                    `json:"text_empty"`
	Suggestions []JobSuggestionResponse `json:"suggestions"`
}

func NewResumeResponse(r resume.Resume) ResumeResponse {
	return ResumeResponse{
		ID:         r.ID,
		SourceName: r.SourceName,
		TextLength: len(r.RawText),
		CreatedAt:  r.CreatedAt,
	}
}

func NewResumeListResponse(items []resume.Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewResumeResponse(r))
	}
	return out
}

func NewUploadResumeResponse(res usecase.UploadResult) UploadResumeResponse {
	out := UploadResumeResponse{
		Resume:      NewResumeResponse(res.Resume),
		TextEmpty:   res.TextEmpty,
		Suggestions: make([]JobSuggestionResponse, 0, len(res.Suggestions)),
	}
	for _, s := range res.Suggestions {
		out.Suggestions = append(out.Suggestions, JobSuggestionResponse{
			JobID: s.JobID,
			Title: s.Title,
			Score: s.Score,
		})
	}
	return out
}

package dto

import (
	"github.com/google/uuid"

	"resmatch/internal/usecase"
)

type MatchItemResponse struct {
	ResumeID uuid.UUID `json:"resume_id"`
	Score    int       `json:"score"`
}

type RecomputeResponse struct {
	JobID    uuid.UUID           `json:"job_id"`
	Matches  []MatchItemResponse `json:"matches"`
	Scored   int                 `json:"scored"`
	Fallback bool                `json:"fallback"`
}

func NewMatchListResponse(items []usecase.MatchItem) []MatchItemResponse {
	out := make([]MatchItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, MatchItemResponse{ResumeID: it.ResumeID, Score: it.Score})
	}
	return out
}

func NewRecomputeResponse(res usecase.RecomputeResult) RecomputeResponse {
	return RecomputeResponse{
		JobID:    res.JobID,
		Matches:  NewMatchListResponse(res.Matches),
		Scored:   res.Scored,
		Fallback: res.Fallback,
	}
}

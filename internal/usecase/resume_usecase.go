package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"resmatch/internal/domain/matching"
	"resmatch/internal/domain/resume"
	"resmatch/internal/extract"
	"resmatch/internal/repository"
)

var (
	ErrResumeNotFound  = errors.New("resume not found")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrEmptyUpload     = errors.New("empty upload")
)

type UploadInput struct {
	Filename string
	Data     []byte
}

type JobSuggestion struct {
	JobID uuid.UUID `json:"job_id"`
	Title string    `json:"title"`
	Score int       `json:"score"`
}

type UploadResult struct {
	Resume      resume.Resume   `json:"resume"`
	TextEmpty   bool            `json:"text_empty"`
	Suggestions []JobSuggestion `json:"suggestions"`
}

type ResumeUsecase interface {
	Upload(ctx context.Context, jobSeekerID uuid.UUID, in UploadInput) (UploadResult, error)
	List(ctx context.Context, jobSeekerID uuid.UUID) ([]resume.Resume, error)
	Delete(ctx context.Context, jobSeekerID, resumeID uuid.UUID) error
}

type Resumes struct {
	resumes repository.ResumeRepository
	jobs    repository.JobRepository

	engine *matching.Engine
	policy matching.SelectionPolicy

	logger *log.Logger
}

func NewResumeUsecase(
	resumes repository.ResumeRepository,
	jobs repository.JobRepository,
	engine *matching.Engine,
	policy matching.SelectionPolicy,
	logger *log.Logger,
) *Resumes {
	return &Resumes{resumes: resumes, jobs: jobs, engine: engine, policy: policy, logger: logger}
}

// Upload stores a resume file's extracted text and suggests open jobs it
// scores well against. Extraction failures on a readable file degrade to
// an empty-text resume instead of rejecting the upload; the engine scores
// empty text as zero everywhere.
func (u *Resumes) Upload(ctx context.Context, jobSeekerID uuid.UUID, in UploadInput) (UploadResult, error) {
	if jobSeekerID == uuid.Nil {
		return UploadResult{}, ErrUnauthorized
	}
	if len(in.Data) == 0 {
		return UploadResult{}, ErrEmptyUpload
	}
	if len(in.Data) > extract.MaxFileSize {
		return UploadResult{}, ErrFileTooLarge
	}
	if !extract.SupportedExt(in.Filename) {
		return UploadResult{}, ErrUnsupportedFile
	}

	text, err := extract.Text(in.Data, in.Filename)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Resume] extraction failed, storing empty text | file=%s err=%v", in.Filename, err)
		}
		text = ""
	}

	r := resume.Resume{
		ID:          uuid.New(),
		JobSeekerID: jobSeekerID,
		SourceName:  strings.TrimSpace(in.Filename),
		RawText:     text,
	}
	if err := u.resumes.Create(ctx, r); err != nil {
		return UploadResult{}, ErrInternal
	}

	created, err := u.resumes.GetByID(ctx, r.ID)
	if err != nil {
		return UploadResult{}, ErrInternal
	}

	result := UploadResult{
		Resume:    created,
		TextEmpty: strings.TrimSpace(text) == "",
	}
	result.Suggestions = u.suggestJobs(ctx, created.RawText)
	return result, nil
}

func (u *Resumes) List(ctx context.Context, jobSeekerID uuid.UUID) ([]resume.Resume, error) {
	if jobSeekerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.resumes.ListByJobSeeker(ctx, jobSeekerID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Resumes) Delete(ctx context.Context, jobSeekerID, resumeID uuid.UUID) error {
	if jobSeekerID == uuid.Nil {
		return ErrUnauthorized
	}
	if resumeID == uuid.Nil {
		return ErrResumeNotFound
	}
	deleted, err := u.resumes.DeleteOwned(ctx, jobSeekerID, resumeID)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return ErrResumeNotFound
	}
	return nil
}

// suggestJobs ranks open postings against the freshly uploaded resume.
// Best effort: a listing failure just means no suggestions.
func (u *Resumes) suggestJobs(ctx context.Context, resumeText string) []JobSuggestion {
	if strings.TrimSpace(resumeText) == "" {
		return nil
	}

	open, err := u.jobs.ListOpen(ctx, 0)
	if err != nil || len(open) == 0 {
		return nil
	}

	titles := make(map[uuid.UUID]string, len(open))
	candidates := make([]matching.Candidate, 0, len(open))
	for _, j := range open {
		score := u.engine.Score(resumeText, engineJobFrom(j))
		titles[j.ID] = j.Title
		candidates = append(candidates, matching.Candidate{ID: j.ID, TotalPercent: score.TotalPercent})
	}

	selected := matching.SelectTop(candidates, u.policy)
	suggestions := make([]JobSuggestion, 0, len(selected))
	for _, c := range selected {
		suggestions = append(suggestions, JobSuggestion{JobID: c.ID, Title: titles[c.ID], Score: c.TotalPercent})
	}
	return suggestions
}

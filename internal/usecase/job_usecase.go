package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"resmatch/internal/domain/job"
	"resmatch/internal/infrastructure/cache"
	"resmatch/internal/repository"
)

var ErrJobNotFound = errors.New("job not found")

type CreateJobInput struct {
	Title          string
	RequiredSkills string
	Degree         string
	Experience     string
	GeneralText    string

	SkillsWeight     *float64
	DegreeWeight     *float64
	ExperienceWeight *float64
	GeneralWeight    *float64
}

type UpdateJobInput struct {
	CreateJobInput
	IsOpen *bool
}

type JobUsecase interface {
	Create(ctx context.Context, companyID uuid.UUID, in CreateJobInput) (job.Job, error)
	Update(ctx context.Context, companyID, jobID uuid.UUID, in UpdateJobInput) (job.Job, error)
	Delete(ctx context.Context, companyID, jobID uuid.UUID) error
	GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	ListOpen(ctx context.Context, limit int) ([]job.Job, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Job, error)
}

type Jobs struct {
	jobs   repository.JobRepository
	cache  MatchCache
	logger *log.Logger
}

func NewJobUsecase(jobs repository.JobRepository, matchCache MatchCache, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, cache: matchCache, logger: logger}
}

func (u *Jobs) Create(ctx context.Context, companyID uuid.UUID, in CreateJobInput) (job.Job, error) {
	if companyID == uuid.Nil {
		return job.Job{}, ErrUnauthorized
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Job{}, ErrInvalidInput
	}

	j := job.New(companyID, title, strings.TrimSpace(in.GeneralText))
	j.RequiredSkills = strings.TrimSpace(in.RequiredSkills)
	j.Degree = strings.TrimSpace(in.Degree)
	j.Experience = strings.TrimSpace(in.Experience)
	applyWeights(&j, in)
	j.ClampWeights()

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}
	u.invalidateListing(ctx)

	created, err := u.jobs.GetByID(ctx, j.ID)
	if err != nil {
		return job.Job{}, ErrInternal
	}
	return created, nil
}

func (u *Jobs) Update(ctx context.Context, companyID, jobID uuid.UUID, in UpdateJobInput) (job.Job, error) {
	current, err := u.ownedJob(ctx, companyID, jobID)
	if err != nil {
		return job.Job{}, err
	}

	if title := strings.TrimSpace(in.Title); title != "" {
		current.Title = title
	}
	current.RequiredSkills = strings.TrimSpace(in.RequiredSkills)
	current.Degree = strings.TrimSpace(in.Degree)
	current.Experience = strings.TrimSpace(in.Experience)
	current.GeneralText = strings.TrimSpace(in.GeneralText)
	applyWeights(&current, in.CreateJobInput)
	if in.IsOpen != nil {
		current.IsOpen = *in.IsOpen
	}
	current.ClampWeights()

	if err := u.jobs.Update(ctx, current); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}

	// Stored matches were scored against the old posting text, so the
	// cached list is stale until the next recompute.
	if u.cache != nil {
		_ = u.cache.InvalidateJob(ctx, jobID)
	}
	return current, nil
}

func (u *Jobs) Delete(ctx context.Context, companyID, jobID uuid.UUID) error {
	if _, err := u.ownedJob(ctx, companyID, jobID); err != nil {
		return err
	}

	deleted, err := u.jobs.Delete(ctx, jobID)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return ErrJobNotFound
	}
	if u.cache != nil {
		_ = u.cache.InvalidateJob(ctx, jobID)
	}
	return nil
}

func (u *Jobs) GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	if jobID == uuid.Nil {
		return job.Job{}, ErrJobNotFound
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) ListOpen(ctx context.Context, limit int) ([]job.Job, error) {
	if u.cache != nil && limit <= 0 {
		var cached []job.Job
		if hit, err := u.cache.GetJSON(ctx, cache.OpenJobsKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobs, err := u.jobs.ListOpen(ctx, limit)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil && limit <= 0 {
		if err := u.cache.SetJSON(ctx, cache.OpenJobsKey, jobs, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Jobs] cache set failed | key=%s err=%v", cache.OpenJobsKey, err)
		}
	}
	return jobs, nil
}

func (u *Jobs) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Job, error) {
	if companyID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	jobs, err := u.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Jobs) ownedJob(ctx context.Context, companyID, jobID uuid.UUID) (job.Job, error) {
	if companyID == uuid.Nil {
		return job.Job{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return job.Job{}, ErrJobNotFound
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	if j.CompanyID != companyID {
		return job.Job{}, ErrForbidden
	}
	return j, nil
}

func (u *Jobs) invalidateListing(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, cache.OpenJobsKey); err != nil && u.logger != nil {
		u.logger.Printf("[Jobs] cache invalidate failed | key=%s err=%v", cache.OpenJobsKey, err)
	}
}

func applyWeights(j *job.Job, in CreateJobInput) {
	if in.SkillsWeight != nil {
		j.SkillsWeight = *in.SkillsWeight
	}
	if in.DegreeWeight != nil {
		j.DegreeWeight = *in.DegreeWeight
	}
	if in.ExperienceWeight != nil {
		j.ExperienceWeight = *in.ExperienceWeight
	}
	if in.GeneralWeight != nil {
		j.GeneralWeight = *in.GeneralWeight
	}
}

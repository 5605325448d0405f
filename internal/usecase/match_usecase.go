package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"resmatch/internal/domain/job"
	"resmatch/internal/domain/match"
	"resmatch/internal/domain/matching"
	"resmatch/internal/domain/resume"
	"resmatch/internal/infrastructure/cache"
	"resmatch/internal/pkg/workerpool"
	"resmatch/internal/repository"
	"resmatch/internal/ws"
)

var ErrRecomputeInProgress = errors.New("recompute already in progress")

const recomputeLockTTL = 30 * time.Second

type MatchItem struct {
	ResumeID uuid.UUID `json:"resume_id"`
	Score    int       `json:"score"`
}

type RecomputeResult struct {
	JobID    uuid.UUID   `json:"job_id"`
	Matches  []MatchItem `json:"matches"`
	Scored   int         `json:"scored"`
	Fallback bool        `json:"fallback"`
}

type MatchUsecase interface {
	RecomputeForJob(ctx context.Context, companyID, jobID uuid.UUID) (RecomputeResult, error)
	ListForJob(ctx context.Context, companyID, jobID uuid.UUID, limit int) ([]MatchItem, error)
}

type Matches struct {
	jobs    repository.JobRepository
	resumes repository.ResumeRepository
	matches repository.MatchRepository

	engine  *matching.Engine
	policy  matching.SelectionPolicy
	workers int

	cache  MatchCache
	logger *log.Logger
}

func NewMatchUsecase(
	jobs repository.JobRepository,
	resumes repository.ResumeRepository,
	matches repository.MatchRepository,
	engine *matching.Engine,
	policy matching.SelectionPolicy,
	workers int,
	matchCache MatchCache,
	logger *log.Logger,
) *Matches {
	if workers <= 0 {
		workers = 4
	}
	return &Matches{
		jobs:    jobs,
		resumes: resumes,
		matches: matches,
		engine:  engine,
		policy:  policy,
		workers: workers,
		cache:   matchCache,
		logger:  logger,
	}
}

// RecomputeForJob scores every stored resume against the job, ranks the
// results, and atomically replaces the job's persisted match set. Only the
// posting company may trigger it.
func (u *Matches) RecomputeForJob(ctx context.Context, companyID, jobID uuid.UUID) (RecomputeResult, error) {
	j, err := u.ownedJob(ctx, companyID, jobID)
	if err != nil {
		return RecomputeResult{}, err
	}

	if u.cache != nil {
		ok, lockErr := u.cache.SetIfNotExists(ctx, cache.JobRecomputeLockKey(jobID), "1", recomputeLockTTL)
		if lockErr == nil && !ok {
			return RecomputeResult{}, ErrRecomputeInProgress
		}
		defer func() { _ = u.cache.Delete(ctx, cache.JobRecomputeLockKey(jobID)) }()
	}

	resumes, err := u.resumes.ListAll(ctx, 0)
	if err != nil {
		return RecomputeResult{}, ErrInternal
	}

	candidates := u.scoreAll(ctx, resumes, j)
	selected := matching.SelectTop(candidates, u.policy)
	fallback := len(selected) > 0 && selected[0].TotalPercent < u.policy.MinScore

	records := make([]match.Record, 0, len(selected))
	for _, c := range selected {
		records = append(records, match.Record{
			ResumeID: c.ID,
			JobID:    jobID,
			Score:    float64(c.TotalPercent) / 100,
		})
	}

	if err := u.matches.ReplaceForJob(ctx, jobID, records); err != nil {
		return RecomputeResult{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, cache.JobMatchesKey(jobID))
	}
	ws.NotifyMatchesRecomputed(jobID, len(selected), fallback)

	if u.logger != nil {
		u.logger.Printf("[Match] recompute done | job_id=%s scored=%d selected=%d fallback=%t",
			jobID, len(candidates), len(selected), fallback)
	}

	result := RecomputeResult{
		JobID:    jobID,
		Matches:  make([]MatchItem, 0, len(selected)),
		Scored:   len(candidates),
		Fallback: fallback,
	}
	for _, c := range selected {
		result.Matches = append(result.Matches, MatchItem{ResumeID: c.ID, Score: c.TotalPercent})
	}
	return result, nil
}

func (u *Matches) ListForJob(ctx context.Context, companyID, jobID uuid.UUID, limit int) ([]MatchItem, error) {
	if _, err := u.ownedJob(ctx, companyID, jobID); err != nil {
		return nil, err
	}

	useCache := u.cache != nil && limit <= 0
	key := cache.JobMatchesKey(jobID)
	if useCache {
		var cached []MatchItem
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	records, err := u.matches.ListByJob(ctx, jobID, limit)
	if err != nil {
		return nil, ErrInternal
	}

	items := make([]MatchItem, 0, len(records))
	for _, r := range records {
		items = append(items, MatchItem{
			ResumeID: r.ResumeID,
			Score:    int(r.Score*100 + 0.5),
		})
	}

	if useCache {
		if err := u.cache.SetJSON(ctx, key, items, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Match] cache set failed | key=%s err=%v", key, err)
		}
	}
	return items, nil
}

// scoreAll fans resume scoring out over the worker pool. Slots are indexed
// per task, so workers never share a write target. A cancelled context
// leaves unscored slots with a nil ID; those are dropped.
func (u *Matches) scoreAll(ctx context.Context, resumes []resume.Resume, j job.Job) []matching.Candidate {
	if len(resumes) == 0 {
		return nil
	}

	engineJob := engineJobFrom(j)
	slots := make([]matching.Candidate, len(resumes))

	pool := workerpool.New(u.workers, len(resumes))
	results := pool.Run(ctx)
	for i := range resumes {
		i := i
		pool.Submit(func(ctx context.Context) error {
			score := u.engine.Score(resumes[i].RawText, engineJob)
			slots[i] = matching.Candidate{ID: resumes[i].ID, TotalPercent: score.TotalPercent}
			return nil
		})
	}
	pool.Close()
	for range results {
	}

	candidates := make([]matching.Candidate, 0, len(slots))
	for _, s := range slots {
		if s.ID != uuid.Nil {
			candidates = append(candidates, s)
		}
	}
	return candidates
}

func (u *Matches) ownedJob(ctx context.Context, companyID, jobID uuid.UUID) (job.Job, error) {
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

func engineJobFrom(j job.Job) matching.Job {
	return matching.Job{
		RequiredSkills:   j.RequiredSkills,
		Degree:           j.Degree,
		Experience:       j.Experience,
		GeneralText:      j.GeneralText,
		SkillsWeight:     j.SkillsWeight,
		DegreeWeight:     j.DegreeWeight,
		ExperienceWeight: j.ExperienceWeight,
		GeneralWeight:    j.GeneralWeight,
	}
}

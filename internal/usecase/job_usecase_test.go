package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"resmatch/internal/domain/job"
)

func TestJobCreate_DefaultsWeights(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, newMockCache(), nil)

	created, err := uc.Create(context.Background(), uuid.New(), CreateJobInput{
		Title:          "Data Engineer",
		RequiredSkills: "python, sql",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.SkillsWeight != job.DefaultWeight || created.GeneralWeight != job.DefaultWeight {
		t.Fatalf("expected default weights, got %+v", created)
	}
	if !created.IsOpen {
		t.Fatalf("expected new job to be open")
	}
}

func TestJobCreate_ClampsNegativeWeight(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, nil, nil)

	neg := -3.0
	created, err := uc.Create(context.Background(), uuid.New(), CreateJobInput{
		Title:        "Data Engineer",
		SkillsWeight: &neg,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.SkillsWeight != 0 {
		t.Fatalf("expected clamped weight 0, got %f", created.SkillsWeight)
	}
}

func TestJobCreate_RequiresTitle(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), nil, nil)

	_, err := uc.Create(context.Background(), uuid.New(), CreateJobInput{Title: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobUpdate_OwnershipEnforced(t *testing.T) {
	owner := uuid.New()
	j := job.New(owner, "Backend Engineer", "")
	uc := NewJobUsecase(newMockJobRepo(j), nil, nil)

	_, err := uc.Update(context.Background(), uuid.New(), j.ID, UpdateJobInput{})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestJobUpdate_InvalidatesMatchCache(t *testing.T) {
	owner := uuid.New()
	j := job.New(owner, "Backend Engineer", "")
	c := newMockCache()
	uc := NewJobUsecase(newMockJobRepo(j), c, nil)

	closed := false
	updated, err := uc.Update(context.Background(), owner, j.ID, UpdateJobInput{
		CreateJobInput: CreateJobInput{Title: "Senior Backend Engineer"},
		IsOpen:         &closed,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Title != "Senior Backend Engineer" || updated.IsOpen {
		t.Fatalf("unexpected updated job: %+v", updated)
	}

	want := "matches:job:" + j.ID.String()
	found := false
	for _, k := range c.deleted {
		if k == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected match cache invalidation for %s, deleted=%v", want, c.deleted)
	}
}

func TestJobDelete_RemovesJob(t *testing.T) {
	owner := uuid.New()
	j := job.New(owner, "Backend Engineer", "")
	repo := newMockJobRepo(j)
	uc := NewJobUsecase(repo, newMockCache(), nil)

	if err := uc.Delete(context.Background(), owner, j.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := repo.jobs[j.ID]; ok {
		t.Fatalf("expected job removed")
	}

	if err := uc.Delete(context.Background(), owner, j.ID); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound on second delete, got %v", err)
	}
}

func TestJobListOpen_UsesCacheOnRepeat(t *testing.T) {
	owner := uuid.New()
	j := job.New(owner, "Backend Engineer", "")
	repo := newMockJobRepo(j)
	c := newMockCache()
	uc := NewJobUsecase(repo, c, nil)

	first, err := uc.ListOpen(context.Background(), 0)
	if err != nil || len(first) != 1 {
		t.Fatalf("unexpected first read: %v err=%v", first, err)
	}

	repo.err = errors.New("db down")
	second, err := uc.ListOpen(context.Background(), 0)
	if err != nil || len(second) != 1 {
		t.Fatalf("expected cached read, got %v err=%v", second, err)
	}
}

package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"resmatch/internal/domain/account"
	"resmatch/internal/domain/job"
	"resmatch/internal/domain/match"
	"resmatch/internal/domain/resume"
	"resmatch/internal/repository"
)

type mockJobRepo struct {
	jobs map[uuid.UUID]job.Job
	err  error

	updated []job.Job
	deleted []uuid.UUID
}

func newMockJobRepo(jobs ...job.Job) *mockJobRepo {
	m := &mockJobRepo{jobs: make(map[uuid.UUID]job.Job)}
	for _, j := range jobs {
		m.jobs[j.ID] = j
	}
	return m
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *mockJobRepo) Update(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.jobs[j.ID]; !ok {
		return repository.ErrJobNotFound
	}
	m.jobs[j.ID] = j
	m.updated = append(m.updated, j)
	return nil
}

func (m *mockJobRepo) Delete(_ context.Context, jobID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.jobs[jobID]; !ok {
		return false, nil
	}
	delete(m.jobs, jobID)
	m.deleted = append(m.deleted, jobID)
	return true, nil
}

func (m *mockJobRepo) GetByID(_ context.Context, jobID uuid.UUID) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	j, ok := m.jobs[jobID]
	if !ok {
		return job.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (m *mockJobRepo) ExistsByID(_ context.Context, jobID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.jobs[jobID]
	return ok, nil
}

func (m *mockJobRepo) ListOpen(_ context.Context, _ int) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		if j.IsOpen {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Job, 0)
	for _, j := range m.jobs {
		if j.CompanyID == companyID {
			out = append(out, j)
		}
	}
	return out, nil
}

type mockResumeRepo struct {
	items map[uuid.UUID]resume.Resume
	err   error
}

func newMockResumeRepo(items ...resume.Resume) *mockResumeRepo {
	m := &mockResumeRepo{items: make(map[uuid.UUID]resume.Resume)}
	for _, r := range items {
		m.items[r.ID] = r
	}
	return m
}

func (m *mockResumeRepo) Create(_ context.Context, r resume.Resume) error {
	if m.err != nil {
		return m.err
	}
	m.items[r.ID] = r
	return nil
}

func (m *mockResumeRepo) GetByID(_ context.Context, id uuid.UUID) (resume.Resume, error) {
	if m.err != nil {
		return resume.Resume{}, m.err
	}
	r, ok := m.items[id]
	if !ok {
		return resume.Resume{}, repository.ErrResumeNotFound
	}
	return r, nil
}

func (m *mockResumeRepo) ListByJobSeeker(_ context.Context, jobSeekerID uuid.UUID) ([]resume.Resume, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]resume.Resume, 0)
	for _, r := range m.items {
		if r.JobSeekerID == jobSeekerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockResumeRepo) ListAll(_ context.Context, _ int) ([]resume.Resume, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]resume.Resume, 0, len(m.items))
	for _, r := range m.items {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockResumeRepo) DeleteOwned(_ context.Context, jobSeekerID, resumeID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	r, ok := m.items[resumeID]
	if !ok || r.JobSeekerID != jobSeekerID {
		return false, nil
	}
	delete(m.items, resumeID)
	return true, nil
}

type mockMatchRepo struct {
	replaced map[uuid.UUID][]match.Record
	listed   []match.Record
	err      error
}

func newMockMatchRepo() *mockMatchRepo {
	return &mockMatchRepo{replaced: make(map[uuid.UUID][]match.Record)}
}

func (m *mockMatchRepo) ReplaceForJob(_ context.Context, jobID uuid.UUID, records []match.Record) error {
	if m.err != nil {
		return m.err
	}
	m.replaced[jobID] = records
	return nil
}

func (m *mockMatchRepo) ListByJob(_ context.Context, _ uuid.UUID, _ int) ([]match.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.listed, nil
}

type mockCompanyRepo struct {
	byEmail map[string]account.Company
	byID    map[uuid.UUID]account.Company
	err     error
}

func newMockCompanyRepo(items ...account.Company) *mockCompanyRepo {
	m := &mockCompanyRepo{byEmail: make(map[string]account.Company), byID: make(map[uuid.UUID]account.Company)}
	for _, c := range items {
		m.byEmail[c.Email] = c
		m.byID[c.ID] = c
	}
	return m
}

func (m *mockCompanyRepo) Create(_ context.Context, c account.Company) error {
	if m.err != nil {
		return m.err
	}
	m.byEmail[c.Email] = c
	m.byID[c.ID] = c
	return nil
}

func (m *mockCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (account.Company, error) {
	if m.err != nil {
		return account.Company{}, m.err
	}
	c, ok := m.byID[id]
	if !ok {
		return account.Company{}, repository.ErrCompanyNotFound
	}
	return c, nil
}

func (m *mockCompanyRepo) GetByEmail(_ context.Context, email string) (account.Company, error) {
	if m.err != nil {
		return account.Company{}, m.err
	}
	c, ok := m.byEmail[email]
	if !ok {
		return account.Company{}, repository.ErrCompanyNotFound
	}
	return c, nil
}

func (m *mockCompanyRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

type mockJobSeekerRepo struct {
	byEmail map[string]account.JobSeeker
	byID    map[uuid.UUID]account.JobSeeker
	err     error
}

func newMockJobSeekerRepo(items ...account.JobSeeker) *mockJobSeekerRepo {
	m := &mockJobSeekerRepo{byEmail: make(map[string]account.JobSeeker), byID: make(map[uuid.UUID]account.JobSeeker)}
	for _, s := range items {
		m.byEmail[s.Email] = s
		m.byID[s.ID] = s
	}
	return m
}

func (m *mockJobSeekerRepo) Create(_ context.Context, s account.JobSeeker) error {
	if m.err != nil {
		return m.err
	}
	m.byEmail[s.Email] = s
	m.byID[s.ID] = s
	return nil
}

func (m *mockJobSeekerRepo) GetByID(_ context.Context, id uuid.UUID) (account.JobSeeker, error) {
	if m.err != nil {
		return account.JobSeeker{}, m.err
	}
	s, ok := m.byID[id]
	if !ok {
		return account.JobSeeker{}, repository.ErrJobSeekerNotFound
	}
	return s, nil
}

func (m *mockJobSeekerRepo) GetByEmail(_ context.Context, email string) (account.JobSeeker, error) {
	if m.err != nil {
		return account.JobSeeker{}, m.err
	}
	s, ok := m.byEmail[email]
	if !ok {
		return account.JobSeeker{}, repository.ErrJobSeekerNotFound
	}
	return s, nil
}

func (m *mockJobSeekerRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

type mockCache struct {
	store   map[string][]byte
	deleted []string
	locked  map[string]bool
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string][]byte), locked: make(map[string]bool)}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	delete(m.store, key)
	delete(m.locked, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *mockCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	if m.locked[key] {
		return false, nil
	}
	m.locked[key] = true
	return true, nil
}

func (m *mockCache) InvalidateJob(_ context.Context, jobID uuid.UUID) error {
	m.deleted = append(m.deleted, "matches:job:"+jobID.String())
	return nil
}

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resmatch/internal/domain/account"
	"resmatch/internal/repository"
)

type companyRepoStub struct {
	byEmail map[string]account.Company
	byID    map[uuid.UUID]account.Company
}

func newCompanyRepoStub() *companyRepoStub {
	return &companyRepoStub{byEmail: map[string]account.Company{}, byID: map[uuid.UUID]account.Company{}}
}

func (s *companyRepoStub) Create(_ context.Context, c account.Company) error {
	s.byEmail[c.Email] = c
	s.byID[c.ID] = c
	return nil
}

func (s *companyRepoStub) GetByID(_ context.Context, id uuid.UUID) (account.Company, error) {
	c, ok := s.byID[id]
	if !ok {
		return account.Company{}, repository.ErrCompanyNotFound
	}
	return c, nil
}

func (s *companyRepoStub) GetByEmail(_ context.Context, email string) (account.Company, error) {
	c, ok := s.byEmail[email]
	if !ok {
		return account.Company{}, repository.ErrCompanyNotFound
	}
	return c, nil
}

func (s *companyRepoStub) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := s.byEmail[email]
	return ok, nil
}

type seekerRepoStub struct {
	byEmail map[string]account.JobSeeker
	byID    map[uuid.UUID]account.JobSeeker
}

func newSeekerRepoStub() *seekerRepoStub {
	return &seekerRepoStub{byEmail: map[string]account.JobSeeker{}, byID: map[uuid.UUID]account.JobSeeker{}}
}

func (s *seekerRepoStub) Create(_ context.Context, js account.JobSeeker) error {
	s.byEmail[js.Email] = js
	s.byID[js.ID] = js
	return nil
}

func (s *seekerRepoStub) GetByID(_ context.Context, id uuid.UUID) (account.JobSeeker, error) {
	js, ok := s.byID[id]
	if !ok {
		return account.JobSeeker{}, repository.ErrJobSeekerNotFound
	}
	return js, nil
}

func (s *seekerRepoStub) GetByEmail(_ context.Context, email string) (account.JobSeeker, error) {
	js, ok := s.byEmail[email]
	if !ok {
		return account.JobSeeker{}, repository.ErrJobSeekerNotFound
	}
	return js, nil
}

func (s *seekerRepoStub) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := s.byEmail[email]
	return ok, nil
}

func TestRegisterCompanyAndLogin(t *testing.T) {
	svc := NewService(newCompanyRepoStub(), newSeekerRepoStub())

	acc, err := svc.Register(context.Background(), RegisterInput{
		Role:     account.RoleCompany,
		Name:     "Acme",
		Email:    "  HR@Acme.io ",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if acc.Email != "hr@acme.io" || acc.Role != account.RoleCompany || acc.Name != "Acme" {
		t.Fatalf("unexpected account: %+v", acc)
	}

	got, err := svc.Login(context.Background(), LoginInput{
		Role:     account.RoleCompany,
		Email:    "hr@acme.io",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != acc.ID {
		t.Fatalf("login returned different account")
	}
}

func TestRegisterJobSeekerDuplicateEmail(t *testing.T) {
	svc := NewService(newCompanyRepoStub(), newSeekerRepoStub())

	in := RegisterInput{Role: account.RoleJobSeeker, Email: "dev@mail.com", Password: "supersecret"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	svc := NewService(newCompanyRepoStub(), newSeekerRepoStub())

	cases := []RegisterInput{
		{Role: account.RoleJobSeeker, Email: "", Password: "supersecret"},
		{Role: account.RoleJobSeeker, Email: "dev@mail.com", Password: "short"},
		{Role: account.RoleCompany, Name: "", Email: "hr@acme.io", Password: "supersecret"},
		{Role: "intern", Email: "dev@mail.com", Password: "supersecret"},
	}
	for i, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	seekers := newSeekerRepoStub()
	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.DefaultCost)
	js := account.JobSeeker{ID: uuid.New(), Email: "dev@mail.com", PasswordHash: string(hash)}
	_ = seekers.Create(context.Background(), js)

	svc := NewService(newCompanyRepoStub(), seekers)

	_, err := svc.Login(context.Background(), LoginInput{
		Role:     account.RoleJobSeeker,
		Email:    "dev@mail.com",
		Password: "wrongpassword",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(newCompanyRepoStub(), newSeekerRepoStub())

	_, err := svc.Login(context.Background(), LoginInput{
		Role:     account.RoleCompany,
		Email:    "ghost@acme.io",
		Password: "supersecret",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

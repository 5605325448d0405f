package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resmatch/internal/domain/account"
	"resmatch/internal/repository"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Role     account.Role
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Role     account.Role
	Email    string
	Password string
}

// Account is the role-agnostic view returned to callers. Name is empty
// for job seekers.
type Account struct {
	ID    uuid.UUID
	Role  account.Role
	Name  string
	Email string
}

// Service owns credential handling for both account kinds. Companies and
// job seekers live in separate tables with separate email namespaces.
type Service struct {
	companies repository.CompanyRepository
	seekers   repository.JobSeekerRepository
}

func NewService(companies repository.CompanyRepository, seekers repository.JobSeekerRepository) *Service {
	return &Service{companies: companies, seekers: seekers}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return Account{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return Account{}, ErrInvalidInput
	}

	switch in.Role {
	case account.RoleCompany:
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return Account{}, ErrInvalidInput
		}
		return s.registerCompany(ctx, name, email, in.Password)
	case account.RoleJobSeeker:
		return s.registerJobSeeker(ctx, email, in.Password)
	}
	return Account{}, ErrInvalidInput
}

func (s *Service) Login(ctx context.Context, in LoginInput) (Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return Account{}, ErrInvalidCredentials
	}

	switch in.Role {
	case account.RoleCompany:
		c, err := s.companies.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrCompanyNotFound) {
				return Account{}, ErrInvalidCredentials
			}
			return Account{}, ErrInternal
		}
		if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(in.Password)) != nil {
			return Account{}, ErrInvalidCredentials
		}
		return Account{ID: c.ID, Role: account.RoleCompany, Name: c.Name, Email: c.Email}, nil

	case account.RoleJobSeeker:
		js, err := s.seekers.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrJobSeekerNotFound) {
				return Account{}, ErrInvalidCredentials
			}
			return Account{}, ErrInternal
		}
		if bcrypt.CompareHashAndPassword([]byte(js.PasswordHash), []byte(in.Password)) != nil {
			return Account{}, ErrInvalidCredentials
		}
		return Account{ID: js.ID, Role: account.RoleJobSeeker, Email: js.Email}, nil
	}
	return Account{}, ErrInvalidCredentials
}

// GetByID resolves an account from a validated token's claims.
func (s *Service) GetByID(ctx context.Context, role account.Role, id uuid.UUID) (Account, error) {
	switch role {
	case account.RoleCompany:
		c, err := s.companies.GetByID(ctx, id)
		if err != nil {
			return Account{}, err
		}
		return Account{ID: c.ID, Role: account.RoleCompany, Name: c.Name, Email: c.Email}, nil
	case account.RoleJobSeeker:
		js, err := s.seekers.GetByID(ctx, id)
		if err != nil {
			return Account{}, err
		}
		return Account{ID: js.ID, Role: account.RoleJobSeeker, Email: js.Email}, nil
	}
	return Account{}, ErrInvalidInput
}

func (s *Service) registerCompany(ctx context.Context, name, email, password string) (Account, error) {
	exists, err := s.companies.ExistsByEmail(ctx, email)
	if err != nil {
		return Account{}, ErrInternal
	}
	if exists {
		return Account{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, ErrInternal
	}

	c := account.Company{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.companies.Create(ctx, c); err != nil {
		exists, exErr := s.companies.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return Account{}, ErrEmailAlreadyRegistered
		}
		return Account{}, ErrInternal
	}
	return Account{ID: c.ID, Role: account.RoleCompany, Name: c.Name, Email: c.Email}, nil
}

func (s *Service) registerJobSeeker(ctx context.Context, email, password string) (Account, error) {
	exists, err := s.seekers.ExistsByEmail(ctx, email)
	if err != nil {
		return Account{}, ErrInternal
	}
	if exists {
		return Account{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, ErrInternal
	}

	js := account.JobSeeker{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.seekers.Create(ctx, js); err != nil {
		exists, exErr := s.seekers.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return Account{}, ErrEmailAlreadyRegistered
		}
		return Account{}, ErrInternal
	}
	return Account{ID: js.ID, Role: account.RoleJobSeeker, Email: js.Email}, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"resmatch/internal/domain/account"
	"resmatch/internal/pkg/jwt"
	ucauth "resmatch/internal/usecase/auth"
)

func newTestAuthUsecase() *Auth {
	svc := ucauth.NewService(newMockCompanyRepo(), newMockJobSeekerRepo())
	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	return NewAuthUsecase(svc, jwtSvc)
}

func TestAuthRegisterIssuesTokens(t *testing.T) {
	uc := newTestAuthUsecase()

	acc, access, refresh, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Role:     account.RoleJobSeeker,
		Email:    "dev@mail.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if acc.Role != account.RoleJobSeeker {
		t.Fatalf("unexpected role: %s", acc.Role)
	}
	if access == "" || refresh == "" || access == refresh {
		t.Fatalf("expected distinct non-empty tokens")
	}
}

func TestAuthRefreshRotatesTokens(t *testing.T) {
	uc := newTestAuthUsecase()

	_, _, refresh, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Role:     account.RoleCompany,
		Name:     "Acme",
		Email:    "hr@acme.io",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	access2, refresh2, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if access2 == "" || refresh2 == "" {
		t.Fatalf("expected rotated tokens")
	}
}

func TestAuthRefreshRejectsAccessToken(t *testing.T) {
	uc := newTestAuthUsecase()

	_, access, _, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Role:     account.RoleJobSeeker,
		Email:    "dev@mail.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthRefreshRejectsGarbage(t *testing.T) {
	uc := newTestAuthUsecase()

	if _, _, err := uc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	if _, _, err := uc.Refresh(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

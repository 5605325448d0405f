package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"resmatch/internal/domain/account"
	"resmatch/internal/pkg/jwt"
	ucauth "resmatch/internal/usecase/auth"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (ucauth.Account, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (ucauth.Account, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
}

func NewAuthUsecase(authSvc *ucauth.Service, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: authSvc, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (ucauth.Account, string, string, error) {
	acc, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return ucauth.Account{}, "", "", err
	}
	access, refresh, err := u.issueTokens(acc)
	if err != nil {
		return ucauth.Account{}, "", "", err
	}
	return acc, access, refresh, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (ucauth.Account, string, string, error) {
	acc, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return ucauth.Account{}, "", "", err
	}
	access, refresh, err := u.issueTokens(acc)
	if err != nil {
		return ucauth.Account{}, "", "", err
	}
	return acc, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	if claims.AccountID == uuid.Nil {
		return "", "", ErrInvalidRefreshToken
	}

	acc, err := u.authSvc.GetByID(ctx, account.Role(claims.Role), claims.AccountID)
	if err != nil {
		return "", "", ErrInvalidRefreshToken
	}

	access, refresh, err := u.issueTokens(acc)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (u *Auth) issueTokens(acc ucauth.Account) (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(acc.ID, acc.Email, string(acc.Role))
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(acc.ID, string(acc.Role))
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

package dto

import (
	"github.com/google/uuid"

	ucauth "resmatch/internal/usecase/auth"
)

type AccountResponse struct {
	ID    uuid.UUID `json:"id"`
	Role  string    `json:"role"`
	Name  string    `json:"name,omitempty"`
	Email string    `json:"email"`
}

type AuthResponse struct {
	Account      AccountResponse `json:"account"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func NewAuthResponse(acc ucauth.Account, access, refresh string) AuthResponse {
	return AuthResponse{
		Account: AccountResponse{
			ID:    acc.ID,
			Role:  string(acc.Role),
			Name:  acc.Name,
			Email: acc.Email,
		},
		AccessToken:  access,
		RefreshToken: refresh,
	}
}

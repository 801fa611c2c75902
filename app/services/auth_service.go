package services

import (
	"context"

	"github.com/merchstore/merchstore/app/repositories"
	"github.com/merchstore/merchstore/pkg/apperr"
	"github.com/merchstore/merchstore/pkg/auth"
	"github.com/merchstore/merchstore/pkg/logger"
)

// TokenResponse is the login payload returned to clients.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService authenticates users and issues access tokens.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login verifies credentials and returns a bearer token.
//
// Every failure path (unknown email, wrong password, deactivated account)
// returns the same invalid_credentials error so responses do not reveal
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	invalid := apperr.New(apperr.CodeInvalidCredentials, "Invalid email or password")

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return TokenResponse{}, invalid
	}
	if !user.IsActive {
		return TokenResponse{}, invalid
	}
	if !auth.CheckPassword(user.Password, password) {
		return TokenResponse{}, invalid
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		logger.WithCtx(ctx).Error("token generation failed", "error", err)
		return TokenResponse{}, apperr.Wrap(apperr.CodeInternal, "Could not issue token", err)
	}

	return TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

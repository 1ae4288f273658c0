package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/anvaya-club/backend/internal/app/models/dto"
	"github.com/anvaya-club/backend/internal/pkg/apperrors"
	"github.com/anvaya-club/backend/internal/pkg/auth"
	"github.com/anvaya-club/backend/internal/pkg/logger"
)

// AuthService handles admin authentication
type AuthService interface {
	// Login verifies admin credentials and issues an access token.
	Login(ctx context.Context, username, password string) (*dto.TokenResponse, error)
}

type authService struct {
	adminUsername string
	adminPassword string
	jwtService    *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(adminUsername, adminPassword string, jwtService *auth.JWTService) AuthService {
	return &authService{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		jwtService:    jwtService,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passwordOK := auth.CheckPassword(s.adminPassword, password)
	if !usernameOK || !passwordOK {
		logger.Warn().Str("username", username).Msg("Failed admin login attempt")
		return nil, apperrors.NewAuthentication("Invalid username or password")
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(username)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate access token")
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	logger.Info().Str("username", username).Msg("Admin logged in")

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

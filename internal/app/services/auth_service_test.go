package services

import (
	"context"
	"testing"
	"time"

	"github.com/anvaya-club/backend/internal/pkg/apperrors"
	"github.com/anvaya-club/backend/internal/pkg/auth"
)

func newAuthServiceForTest(password string) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	return NewAuthService("admin", password, jwtService)
}

// TestLoginSuccess verifies valid credentials yield a bearer token.
func TestLoginSuccess(t *testing.T) {
	svc := newAuthServiceForTest("s3cret")

	token, err := svc.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token.AccessToken == "" {
		t.Error("Expected a non-empty access token")
	}
	if token.TokenType != "bearer" {
		t.Errorf("Expected token type bearer, got %s", token.TokenType)
	}
	if token.ExpiresIn != 3600 {
		t.Errorf("Expected expires_in 3600, got %d", token.ExpiresIn)
	}
}

// TestLoginBcryptPassword verifies a bcrypt-hashed configured password is
// accepted.
func TestLoginBcryptPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	svc := newAuthServiceForTest(hash)

	if _, err := svc.Login(context.Background(), "admin", "s3cret"); err != nil {
		t.Fatalf("Login with bcrypt password failed: %v", err)
	}
}

// TestLoginBadCredentials verifies wrong username or password both fail with
// an authentication error.
func TestLoginBadCredentials(t *testing.T) {
	svc := newAuthServiceForTest("s3cret")

	for _, tc := range []struct{ username, password string }{
		{"admin", "wrong"},
		{"intruder", "s3cret"},
	} {
		_, err := svc.Login(context.Background(), tc.username, tc.password)
		if !apperrors.IsKind(err, apperrors.KindAuthentication) {
			t.Errorf("Expected Authentication kind for %s/%s, got %v", tc.username, tc.password, err)
		}
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anvaya-club/backend/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func guardedRouter(jwtService *auth.JWTService) *gin.Engine {
	router := gin.New()
	router.GET("/protected", RequireAuth(jwtService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString(ContextUsernameKey)})
	})
	return router
}

// TestRequireAuthRejectsMissingHeader verifies requests without a bearer
// token get 401 with the challenge header.
func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour, TokenIssuer: "t"})
	router := guardedRouter(jwtService)

	for _, header := range []string{"", "Token abc", "Bearer "} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, w.Code)
		}
		if w.Header().Get("WWW-Authenticate") != "Bearer" {
			t.Errorf("header %q: missing WWW-Authenticate challenge", header)
		}
	}
}

// TestRequireAuthAcceptsValidToken verifies a valid token passes and the
// username lands in the request context.
func TestRequireAuthAcceptsValidToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour, TokenIssuer: "t"})
	token, _, err := jwtService.GenerateAccessToken("admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	router := guardedRouter(jwtService)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

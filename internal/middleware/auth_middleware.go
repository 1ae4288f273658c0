package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/anvaya-club/backend/internal/pkg/apperrors"
	"github.com/anvaya-club/backend/internal/pkg/auth"
)

// ContextUsernameKey is the gin context key carrying the authenticated admin
// username.
const ContextUsernameKey = "username"

// RequireAuth guards admin routes with a bearer token check.
func RequireAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, apperrors.NewAuthentication("Missing or malformed authorization header"))
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			detail := "Invalid authentication token"
			if errors.Is(err, auth.ErrExpiredToken) {
				detail = "Authentication token has expired"
			}
			HandleAPIError(c, apperrors.NewAuthentication(detail))
			return
		}

		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

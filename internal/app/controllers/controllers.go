// Package controllers contains the HTTP request handlers.
package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anvaya-club/backend/internal/app/services"
	"github.com/anvaya-club/backend/internal/pkg/apperrors"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController     *AuthController
	WingController     *WingController
	ActivityController *ActivityController
	PhotoController    *PhotoController
	StatsController    *StatsController
}

// NewControllers initializes all controllers
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AuthController:     NewAuthController(svcs.Auth),
		WingController:     NewWingController(svcs.Wing),
		ActivityController: NewActivityController(svcs.Activity),
		PhotoController:    NewPhotoController(svcs.Photo),
		StatsController:    NewStatsController(svcs.Stats),
	}
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationField(fmt.Sprintf("Invalid %s parameter", name), name)
	}
	return id, nil
}

// parseBoundedQueryInt reads an integer query parameter with a default,
// rejecting values outside [min, max]. Out-of-range values fail validation
// rather than being clamped.
func parseBoundedQueryInt(c *gin.Context, name string, def, min, max int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationField(fmt.Sprintf("%s must be an integer", name), name)
	}
	if value < min || value > max {
		return 0, apperrors.NewValidationField(
			fmt.Sprintf("%s must be between %d and %d", name, min, max), name)
	}
	return value, nil
}

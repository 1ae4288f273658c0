// Package services contains the application's business logic, sitting between
// the HTTP controllers and the repositories.
package services

import (
	"io"
	"strconv"

	"github.com/anvaya-club/backend/internal/app/repositories"
	"github.com/anvaya-club/backend/internal/config"
	"github.com/anvaya-club/backend/internal/pkg/auth"
	"github.com/anvaya-club/backend/internal/pkg/mediastore"
)

// FileInput is an uploaded file handed down from the transport layer.
type FileInput struct {
	Filename string
	Reader   io.Reader
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Services holds all the service instances
type Services struct {
	Auth     AuthService
	Wing     WingService
	Activity ActivityService
	Photo    PhotoService
	Stats    StatsService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, media mediastore.Uploader, cfg *config.Config) *Services {
	wingService := NewWingService(repos.WingRepository)
	return &Services{
		Auth:     NewAuthService(cfg.Admin.Username, cfg.Admin.Password, jwtService),
		Wing:     wingService,
		Activity: NewActivityService(repos.ActivityRepository, repos.WingRepository, media, cfg.Cloudinary.BaseFolder),
		Photo:    NewPhotoService(repos.PhotoRepository, repos.WingRepository, media, cfg.Cloudinary.BaseFolder),
		Stats:    NewStatsService(repos.ActivityRepository),
	}
}

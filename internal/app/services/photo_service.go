package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/anvaya-club/backend/internal/app/models"
	"github.com/anvaya-club/backend/internal/app/repositories"
	"github.com/anvaya-club/backend/internal/pkg/apperrors"
	"github.com/anvaya-club/backend/internal/pkg/logger"
	"github.com/anvaya-club/backend/internal/pkg/mediastore"
)

// photoStore is the photo persistence surface consumed by services.
type photoStore interface {
	GetByWing(ctx context.Context, wingID int64, limit, offset int) ([]*models.Photo, error)
	GetLatestByWing(ctx context.Context, wingID int64, limit int) ([]*models.Photo, error)
	GetByID(ctx context.Context, id int64) (*models.Photo, error)
	CreateBulk(ctx context.Context, photos []*models.Photo) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// PhotoService handles wing photo uploads and reads
type PhotoService interface {
	// ListByWing returns a page of a wing's photos, newest first.
	ListByWing(ctx context.Context, slug string, limit, offset int) ([]*models.Photo, error)
	// LatestByWing returns the newest photos of a wing.
	LatestByWing(ctx context.Context, slug string, limit int) ([]*models.Photo, error)
	// Upload stores a batch of images and records one photo row per asset.
	Upload(ctx context.Context, wingID int64, files []FileInput) ([]*models.Photo, error)
	// Delete removes a photo row after a best-effort remote asset delete.
	Delete(ctx context.Context, id int64) error
}

type photoService struct {
	photos     photoStore
	wings      wingReader
	media      mediastore.Uploader
	baseFolder string
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(photos photoStore, wings wingReader, media mediastore.Uploader, baseFolder string) PhotoService {
	return &photoService{
		photos:     photos,
		wings:      wings,
		media:      media,
		baseFolder: baseFolder,
	}
}

func (s *photoService) ListByWing(ctx context.Context, slug string, limit, offset int) ([]*models.Photo, error) {
	wing, err := requireWingBySlug(ctx, s.wings, slug)
	if err != nil {
		return nil, err
	}

	photos, err := s.photos.GetByWing(ctx, wing.ID, limit, offset)
	if err != nil {
		return nil, apperrors.NewDatabase("Failed to list photos", err)
	}
	return photos, nil
}

func (s *photoService) LatestByWing(ctx context.Context, slug string, limit int) ([]*models.Photo, error) {
	wing, err := requireWingBySlug(ctx, s.wings, slug)
	if err != nil {
		return nil, err
	}

	photos, err := s.photos.GetLatestByWing(ctx, wing.ID, limit)
	if err != nil {
		return nil, apperrors.NewDatabase("Failed to list photos", err)
	}
	return photos, nil
}

func (s *photoService) Upload(ctx context.Context, wingID int64, files []FileInput) ([]*models.Photo, error) {
	wing, err := requireWingByID(ctx, s.wings, wingID)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, apperrors.NewValidationField("At least one file is required", "files")
	}

	// The whole batch is validated before any upload starts so a bad file
	// never leaves partial uploads behind.
	for _, file := range files {
		if !mediastore.IsAllowedImage(file.Filename) {
			return nil, apperrors.NewFileUpload(
				"File type not allowed. Allowed types: .jpg, .jpeg, .png, .gif, .webp",
				file.Filename,
			)
		}
	}

	folder := fmt.Sprintf("%s/%s", s.baseFolder, wing.Slug)
	photos := make([]*models.Photo, 0, len(files))
	for _, file := range files {
		asset, err := s.media.UploadImage(ctx, file.Reader, folder)
		if err != nil {
			logger.Error().Err(err).Str("filename", file.Filename).Msg("Photo upload failed")
			s.discardAssets(ctx, photos)
			return nil, apperrors.NewExternalService("Cloudinary", "failed to upload photo", err)
		}
		photos = append(photos, &models.Photo{
			WingID:       wing.ID,
			URL:          asset.URL,
			CloudinaryID: asset.PublicID,
		})
	}

	if err := s.photos.CreateBulk(ctx, photos); err != nil {
		s.discardAssets(ctx, photos)
		return nil, apperrors.NewDatabase("Failed to save photos", err)
	}

	logger.Info().Int("count", len(photos)).Str("wing", wing.Slug).Msg("Photos uploaded")
	return photos, nil
}

func (s *photoService) Delete(ctx context.Context, id int64) error {
	photo, err := s.photos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFound("Photo", "id", formatID(id))
		}
		return apperrors.NewDatabase("Failed to get photo", err)
	}

	mediastore.TryDelete(ctx, s.media.DeleteImage, photo.CloudinaryID)

	deleted, err := s.photos.Delete(ctx, id)
	if err != nil {
		return apperrors.NewDatabase("Failed to delete photo", err)
	}
	if !deleted {
		return apperrors.NewNotFound("Photo", "id", formatID(id))
	}

	logger.Info().Int64("photoID", id).Msg("Photo deleted")
	return nil
}

// discardAssets best-effort deletes remote assets left behind by an aborted
// batch.
func (s *photoService) discardAssets(ctx context.Context, photos []*models.Photo) {
	for _, photo := range photos {
		mediastore.TryDelete(ctx, s.media.DeleteImage, photo.CloudinaryID)
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anvaya-club/backend/internal/app/models"
	"github.com/anvaya-club/backend/internal/app/repositories"
	"github.com/anvaya-club/backend/internal/pkg/apperrors"
	"github.com/anvaya-club/backend/internal/pkg/logger"
	"github.com/anvaya-club/backend/internal/pkg/mediastore"
)

// activityStore is the activity persistence surface consumed by services.
type activityStore interface {
	GetByWing(ctx context.Context, wingID int64, limit int) ([]*models.Activity, error)
	GetByID(ctx context.Context, id int64) (*models.Activity, error)
	Create(ctx context.Context, activity *models.Activity) error
	Update(ctx context.Context, id int64, update models.ActivityUpdate) (*models.Activity, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetAll(ctx context.Context, limit int) ([]*models.Activity, error)
	GetAllWithWings(ctx context.Context) ([]*models.ActivityWithWing, error)
}

// ActivityCreateInput carries the fields of a new activity. Report is an
// optional PDF attachment.
type ActivityCreateInput struct {
	WingID             int64
	Title              string
	Description        string
	ActivityDate       time.Time
	FacultyCoordinator *string
	Report             *FileInput
}

// ActivityUpdateInput carries the optional fields of a partial update. Nil
// fields are left untouched. Report, when set, replaces the stored PDF.
type ActivityUpdateInput struct {
	Title              *string
	Description        *string
	ActivityDate       *time.Time
	FacultyCoordinator *string
	Report             *FileInput
}

// ActivityService handles the activity lifecycle
type ActivityService interface {
	// ListByWing returns a wing's activities, newest first.
	ListByWing(ctx context.Context, slug string, limit int) ([]*models.Activity, error)
	// GetByID returns a single activity.
	GetByID(ctx context.Context, id int64) (*models.Activity, error)
	// ListAll returns activities across all wings, newest first.
	ListAll(ctx context.Context, limit int) ([]*models.Activity, error)
	// Create records a new activity, uploading its report PDF if attached.
	Create(ctx context.Context, input ActivityCreateInput) (*models.Activity, error)
	// Update applies a partial update, optionally replacing the report PDF.
	Update(ctx context.Context, id int64, input ActivityUpdateInput) (*models.Activity, error)
	// Delete removes an activity and best-effort deletes its report asset.
	Delete(ctx context.Context, id int64) error
}

type activityService struct {
	activities activityStore
	wings      wingReader
	media      mediastore.Uploader
	baseFolder string
}

// NewActivityService creates a new ActivityService
func NewActivityService(activities activityStore, wings wingReader, media mediastore.Uploader, baseFolder string) ActivityService {
	return &activityService{
		activities: activities,
		wings:      wings,
		media:      media,
		baseFolder: baseFolder,
	}
}

func (s *activityService) ListByWing(ctx context.Context, slug string, limit int) ([]*models.Activity, error) {
	wing, err := requireWingBySlug(ctx, s.wings, slug)
	if err != nil {
		return nil, err
	}

	activities, err := s.activities.GetByWing(ctx, wing.ID, limit)
	if err != nil {
		return nil, apperrors.NewDatabase("Failed to list activities", err)
	}
	return activities, nil
}

func (s *activityService) GetByID(ctx context.Context, id int64) (*models.Activity, error) {
	activity, err := s.activities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFound("Activity", "id", formatID(id))
		}
		return nil, apperrors.NewDatabase("Failed to get activity", err)
	}
	return activity, nil
}

func (s *activityService) ListAll(ctx context.Context, limit int) ([]*models.Activity, error) {
	activities, err := s.activities.GetAll(ctx, limit)
	if err != nil {
		return nil, apperrors.NewDatabase("Failed to list activities", err)
	}
	return activities, nil
}

func (s *activityService) Create(ctx context.Context, input ActivityCreateInput) (*models.Activity, error) {
	wing, err := requireWingByID(ctx, s.wings, input.WingID)
	if err != nil {
		return nil, err
	}

	activity := &models.Activity{
		WingID:             wing.ID,
		Title:              strings.TrimSpace(input.Title),
		Description:        strings.TrimSpace(input.Description),
		ActivityDate:       input.ActivityDate,
		FacultyCoordinator: trimOptional(input.FacultyCoordinator),
	}
	if activity.Title == "" {
		return nil, apperrors.NewValidationField("Title must not be empty", "title")
	}

	// The report uploads before the row is written so an activity never
	// declares a report that does not exist remotely.
	if input.Report != nil {
		asset, err := s.uploadReport(ctx, wing.Slug, input.Report)
		if err != nil {
			return nil, err
		}
		activity.ReportURL = &asset.URL
		activity.ReportCloudinaryID = &asset.PublicID
	}

	if err := s.activities.Create(ctx, activity); err != nil {
		if activity.ReportCloudinaryID != nil {
			mediastore.TryDelete(ctx, s.media.DeleteReport, *activity.ReportCloudinaryID)
		}
		return nil, apperrors.NewDatabase("Failed to create activity", err)
	}

	logger.Info().Int64("activityID", activity.ID).Str("wing", wing.Slug).Msg("Activity created")
	return activity, nil
}

func (s *activityService) Update(ctx context.Context, id int64, input ActivityUpdateInput) (*models.Activity, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := models.ActivityUpdate{
		Title:              trimOptional(input.Title),
		Description:        trimOptional(input.Description),
		ActivityDate:       input.ActivityDate,
		FacultyCoordinator: trimOptional(input.FacultyCoordinator),
	}
	if update.Title != nil && *update.Title == "" {
		return nil, apperrors.NewValidationField("Title must not be empty", "title")
	}

	if input.Report != nil {
		// Validate the replacement before touching the stored asset so a
		// rejected file leaves the current report intact.
		if !mediastore.IsAllowedReport(input.Report.Filename) {
			return nil, apperrors.NewFileUpload("Only PDF files are allowed for activity reports", input.Report.Filename)
		}
		wing, err := requireWingByID(ctx, s.wings, current.WingID)
		if err != nil {
			return nil, err
		}
		if currentID := current.ReportCloudinaryID; currentID != nil {
			mediastore.TryDelete(ctx, s.media.DeleteReport, *currentID)
		}
		asset, err := s.uploadReport(ctx, wing.Slug, input.Report)
		if err != nil {
			// No field changes are applied on a failed replacement upload.
			return nil, err
		}
		update.ReportURL = &asset.URL
		update.ReportCloudinaryID = &asset.PublicID
	}

	updated, err := s.activities.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFound("Activity", "id", formatID(id))
		}
		return nil, apperrors.NewDatabase("Failed to update activity", err)
	}
	return updated, nil
}

func (s *activityService) Delete(ctx context.Context, id int64) error {
	activity, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if activity.ReportCloudinaryID != nil {
		mediastore.TryDelete(ctx, s.media.DeleteReport, *activity.ReportCloudinaryID)
	}

	deleted, err := s.activities.Delete(ctx, id)
	if err != nil {
		return apperrors.NewDatabase("Failed to delete activity", err)
	}
	if !deleted {
		return apperrors.NewNotFound("Activity", "id", formatID(id))
	}

	logger.Info().Int64("activityID", id).Msg("Activity deleted")
	return nil
}

func (s *activityService) uploadReport(ctx context.Context, slug string, file *FileInput) (*mediastore.Asset, error) {
	if !mediastore.IsAllowedReport(file.Filename) {
		return nil, apperrors.NewFileUpload("Only PDF files are allowed for activity reports", file.Filename)
	}

	folder := fmt.Sprintf("%s/%s/reports", s.baseFolder, slug)
	asset, err := s.media.UploadReport(ctx, file.Reader, folder)
	if err != nil {
		logger.Error().Err(err).Str("filename", file.Filename).Msg("Report upload failed")
		return nil, apperrors.NewExternalService("Cloudinary", "failed to upload activity report", err)
	}
	return asset, nil
}

// trimOptional trims an optional string in place, preserving nil.
func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

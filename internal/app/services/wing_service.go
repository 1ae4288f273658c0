package services

import (
	"context"
	"errors"

	"github.com/anvaya-club/backend/internal/app/models"
	"github.com/anvaya-club/backend/internal/app/repositories"
	"github.com/anvaya-club/backend/internal/pkg/apperrors"
)

// wingReader is the wing lookup surface consumed by services.
type wingReader interface {
	GetAll(ctx context.Context) ([]*models.Wing, error)
	GetByID(ctx context.Context, id int64) (*models.Wing, error)
	GetBySlug(ctx context.Context, slug string) (*models.Wing, error)
	GetWithRelations(ctx context.Context, slug string) (*models.WingWithRelations, error)
}

// WingService handles wing read operations
type WingService interface {
	// ListWings returns all wings.
	ListWings(ctx context.Context) ([]*models.Wing, error)
	// GetWingDetail returns a wing with its activities and photos.
	GetWingDetail(ctx context.Context, slug string) (*models.WingWithRelations, error)
}

type wingService struct {
	wings wingReader
}

// NewWingService creates a new WingService
func NewWingService(wings wingReader) WingService {
	return &wingService{wings: wings}
}

func (s *wingService) ListWings(ctx context.Context) ([]*models.Wing, error) {
	wings, err := s.wings.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewDatabase("Failed to list wings", err)
	}
	return wings, nil
}

func (s *wingService) GetWingDetail(ctx context.Context, slug string) (*models.WingWithRelations, error) {
	wing, err := s.wings.GetWithRelations(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFound("Wing", "slug", slug)
		}
		return nil, apperrors.NewDatabase("Failed to get wing", err)
	}
	return wing, nil
}

// requireWingBySlug resolves a wing by slug or reports not-found.
func requireWingBySlug(ctx context.Context, wings wingReader, slug string) (*models.Wing, error) {
	wing, err := wings.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFound("Wing", "slug", slug)
		}
		return nil, apperrors.NewDatabase("Failed to get wing", err)
	}
	return wing, nil
}

// requireWingByID resolves a wing by ID or reports not-found.
func requireWingByID(ctx context.Context, wings wingReader, id int64) (*models.Wing, error) {
	wing, err := wings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFound("Wing", "id", formatID(id))
		}
		return nil, apperrors.NewDatabase("Failed to get wing", err)
	}
	return wing, nil
}

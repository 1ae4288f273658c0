package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anvaya-club/backend/internal/app/models"
	"github.com/anvaya-club/backend/internal/pkg/logger"
)

// WingRepository handles wing database operations
type WingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewWingRepository creates a new WingRepository
func NewWingRepository(db *pgxpool.Pool) *WingRepository {
	return &WingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all wings in the store's natural order
func (r *WingRepository) GetAll(ctx context.Context) ([]*models.Wing, error) {
	sql, args, err := r.sb.Select("id", "slug", "name").
		From("wings").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all wings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all wings query")
		return nil, fmt.Errorf("error querying wings: %w", err)
	}
	defer rows.Close()

	wings := []*models.Wing{}
	for rows.Next() {
		wing := &models.Wing{}
		if err := rows.Scan(&wing.ID, &wing.Slug, &wing.Name); err != nil {
			return nil, fmt.Errorf("error scanning wing row: %w", err)
		}
		wings = append(wings, wing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wing rows: %w", err)
	}

	return wings, nil
}

// GetByID retrieves a wing by ID
func (r *WingRepository) GetByID(ctx context.Context, id int64) (*models.Wing, error) {
	sql, args, err := r.sb.Select("id", "slug", "name").
		From("wings").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get wing query: %w", err)
	}

	wing := &models.Wing{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&wing.ID, &wing.Slug, &wing.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("wingID", id).Msg("Error scanning wing row")
		return nil, fmt.Errorf("error getting wing by ID: %w", err)
	}

	return wing, nil
}

// GetBySlug retrieves a wing by its slug
func (r *WingRepository) GetBySlug(ctx context.Context, slug string) (*models.Wing, error) {
	sql, args, err := r.sb.Select("id", "slug", "name").
		From("wings").
		Where(squirrel.Eq{"slug": slug}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get wing by slug query: %w", err)
	}

	wing := &models.Wing{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&wing.ID, &wing.Slug, &wing.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("slug", slug).Msg("Error scanning wing row")
		return nil, fmt.Errorf("error getting wing by slug: %w", err)
	}

	return wing, nil
}

// GetWithRelations retrieves a wing by slug together with its activities
// (activity_date descending) and photos (uploaded_at descending).
func (r *WingRepository) GetWithRelations(ctx context.Context, slug string) (*models.WingWithRelations, error) {
	wing, err := r.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	result := &models.WingWithRelations{
		Wing:       *wing,
		Activities: []*models.Activity{},
		Photos:     []*models.Photo{},
	}

	actSQL, actArgs, err := r.sb.Select(activityColumns...).
		From("activities").
		Where(squirrel.Eq{"wing_id": wing.ID}).
		OrderBy("activity_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build wing activities query: %w", err)
	}

	actRows, err := r.db.Query(ctx, actSQL, actArgs...)
	if err != nil {
		logger.Error().Err(err).Str("slug", slug).Msg("Error querying wing activities")
		return nil, fmt.Errorf("error querying wing activities: %w", err)
	}
	defer actRows.Close()

	for actRows.Next() {
		activity := &models.Activity{}
		if err := scanActivity(actRows, activity); err != nil {
			return nil, fmt.Errorf("error scanning activity row: %w", err)
		}
		result.Activities = append(result.Activities, activity)
	}
	if err := actRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	photoSQL, photoArgs, err := r.sb.Select(photoColumns...).
		From("photos").
		Where(squirrel.Eq{"wing_id": wing.ID}).
		OrderBy("uploaded_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build wing photos query: %w", err)
	}

	photoRows, err := r.db.Query(ctx, photoSQL, photoArgs...)
	if err != nil {
		logger.Error().Err(err).Str("slug", slug).Msg("Error querying wing photos")
		return nil, fmt.Errorf("error querying wing photos: %w", err)
	}
	defer photoRows.Close()

	for photoRows.Next() {
		photo := &models.Photo{}
		if err := scanPhoto(photoRows, photo); err != nil {
			return nil, fmt.Errorf("error scanning photo row: %w", err)
		}
		result.Photos = append(result.Photos, photo)
	}
	if err := photoRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo rows: %w", err)
	}

	return result, nil
}

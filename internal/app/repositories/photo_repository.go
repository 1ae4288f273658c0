package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anvaya-club/backend/internal/app/models"
	"github.com/anvaya-club/backend/internal/db"
	"github.com/anvaya-club/backend/internal/pkg/logger"
)

// photoColumns is the canonical column order used by scanPhoto.
var photoColumns = []string{"id", "wing_id", "url", "cloudinary_id", "uploaded_at"}

// scanPhoto scans one photos row in photoColumns order
func scanPhoto(row pgx.Row, p *models.Photo) error {
	return row.Scan(&p.ID, &p.WingID, &p.URL, &p.CloudinaryID, &p.UploadedAt)
}

// PhotoRepository handles photo database operations
type PhotoRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPhotoRepository creates a new PhotoRepository
func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByWing retrieves a page of photos for a wing, newest first
func (r *PhotoRepository) GetByWing(ctx context.Context, wingID int64, limit, offset int) ([]*models.Photo, error) {
	sql, args, err := r.sb.Select(photoColumns...).
		From("photos").
		Where(squirrel.Eq{"wing_id": wingID}).
		OrderBy("uploaded_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get photos by wing query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("wingID", wingID).Msg("Error executing get photos by wing query")
		return nil, fmt.Errorf("error querying photos: %w", err)
	}
	defer rows.Close()

	photos := []*models.Photo{}
	for rows.Next() {
		photo := &models.Photo{}
		if err := scanPhoto(rows, photo); err != nil {
			return nil, fmt.Errorf("error scanning photo row: %w", err)
		}
		photos = append(photos, photo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo rows: %w", err)
	}

	return photos, nil
}

// GetLatestByWing retrieves the newest photos of a wing, for slideshows
func (r *PhotoRepository) GetLatestByWing(ctx context.Context, wingID int64, limit int) ([]*models.Photo, error) {
	return r.GetByWing(ctx, wingID, limit, 0)
}

// GetByID retrieves a photo by ID
func (r *PhotoRepository) GetByID(ctx context.Context, id int64) (*models.Photo, error) {
	sql, args, err := r.sb.Select(photoColumns...).
		From("photos").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get photo query: %w", err)
	}

	photo := &models.Photo{}
	if err := scanPhoto(r.db.QueryRow(ctx, sql, args...), photo); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("photoID", id).Msg("Error scanning photo row")
		return nil, fmt.Errorf("error getting photo by ID: %w", err)
	}

	return photo, nil
}

// Create persists a single photo record and fills in its assigned identity
func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	sql, args, err := r.sb.Insert("photos").
		Columns("wing_id", "url", "cloudinary_id").
		Values(photo.WingID, photo.URL, photo.CloudinaryID).
		Suffix("RETURNING id, uploaded_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create photo query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&photo.ID, &photo.UploadedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create photo query")
		return fmt.Errorf("error creating photo: %w", err)
	}

	return nil
}

// CreateBulk persists many photo records in a single transaction. The batch
// succeeds or fails as a unit; on failure no row is observable.
func (r *PhotoRepository) CreateBulk(ctx context.Context, photos []*models.Photo) error {
	if len(photos) == 0 {
		return nil
	}

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, photo := range photos {
			sql, args, err := r.sb.Insert("photos").
				Columns("wing_id", "url", "cloudinary_id").
				Values(photo.WingID, photo.URL, photo.CloudinaryID).
				Suffix("RETURNING id, uploaded_at").
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build bulk photo insert query: %w", err)
			}

			if err := tx.QueryRow(ctx, sql, args...).Scan(&photo.ID, &photo.UploadedAt); err != nil {
				return fmt.Errorf("error inserting photo: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int("count", len(photos)).Msg("Bulk photo insert failed, rolled back")
		return err
	}

	return nil
}

// Delete removes a photo by ID, reporting whether a row was removed
func (r *PhotoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Delete("photos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete photo query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("photoID", id).Msg("Error executing delete photo query")
		return false, fmt.Errorf("error deleting photo: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

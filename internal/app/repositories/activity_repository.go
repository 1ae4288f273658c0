package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anvaya-club/backend/internal/app/models"
	"github.com/anvaya-club/backend/internal/pkg/logger"
)

// activityColumns is the canonical column order used by scanActivity.
var activityColumns = []string{
	"id", "wing_id", "title", "description", "activity_date",
	"faculty_coordinator", "report_url", "report_cloudinary_id",
}

// scanActivity scans one activities row in activityColumns order
func scanActivity(row pgx.Row, a *models.Activity) error {
	return row.Scan(
		&a.ID, &a.WingID, &a.Title, &a.Description, &a.ActivityDate,
		&a.FacultyCoordinator, &a.ReportURL, &a.ReportCloudinaryID,
	)
}

// ActivityRepository handles activity database operations
type ActivityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByWing retrieves activities for a wing, newest first, capped at limit
func (r *ActivityRepository) GetByWing(ctx context.Context, wingID int64, limit int) ([]*models.Activity, error) {
	sql, args, err := r.sb.Select(activityColumns...).
		From("activities").
		Where(squirrel.Eq{"wing_id": wingID}).
		OrderBy("activity_date DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get activities by wing query: %w", err)
	}

	return r.queryActivities(ctx, sql, args)
}

// GetByID retrieves an activity by ID
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*models.Activity, error) {
	sql, args, err := r.sb.Select(activityColumns...).
		From("activities").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get activity query: %w", err)
	}

	activity := &models.Activity{}
	if err := scanActivity(r.db.QueryRow(ctx, sql, args...), activity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("activityID", id).Msg("Error scanning activity row")
		return nil, fmt.Errorf("error getting activity by ID: %w", err)
	}

	return activity, nil
}

// Create persists a new activity and fills in its assigned ID
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	sql, args, err := r.sb.Insert("activities").
		Columns("wing_id", "title", "description", "activity_date",
			"faculty_coordinator", "report_url", "report_cloudinary_id").
		Values(activity.WingID, activity.Title, activity.Description, activity.ActivityDate,
			activity.FacultyCoordinator, activity.ReportURL, activity.ReportCloudinaryID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create activity query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&activity.ID); err != nil {
		logger.Error().Err(err).Msg("Error executing create activity query")
		return fmt.Errorf("error creating activity: %w", err)
	}

	return nil
}

// Update applies only the non-nil fields of update and returns the updated
// activity. Returns ErrNotFound when the id does not exist.
func (r *ActivityRepository) Update(ctx context.Context, id int64, update models.ActivityUpdate) (*models.Activity, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	setMap := map[string]interface{}{}
	if update.Title != nil {
		setMap["title"] = *update.Title
	}
	if update.Description != nil {
		setMap["description"] = *update.Description
	}
	if update.ActivityDate != nil {
		setMap["activity_date"] = *update.ActivityDate
	}
	if update.FacultyCoordinator != nil {
		setMap["faculty_coordinator"] = *update.FacultyCoordinator
	}
	if update.ReportURL != nil {
		setMap["report_url"] = *update.ReportURL
	}
	if update.ReportCloudinaryID != nil {
		setMap["report_cloudinary_id"] = *update.ReportCloudinaryID
	}

	sql, args, err := r.sb.Update("activities").
		SetMap(setMap).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(activityColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update activity query: %w", err)
	}

	activity := &models.Activity{}
	if err := scanActivity(r.db.QueryRow(ctx, sql, args...), activity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("activityID", id).Msg("Error executing update activity query")
		return nil, fmt.Errorf("error updating activity: %w", err)
	}

	return activity, nil
}

// Delete removes an activity by ID, reporting whether a row was removed
func (r *ActivityRepository) Delete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Delete("activities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete activity query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("activityID", id).Msg("Error executing delete activity query")
		return false, fmt.Errorf("error deleting activity: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// GetAll retrieves activities across all wings, newest first, capped at limit
func (r *ActivityRepository) GetAll(ctx context.Context, limit int) ([]*models.Activity, error) {
	sql, args, err := r.sb.Select(activityColumns...).
		From("activities").
		OrderBy("activity_date DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all activities query: %w", err)
	}

	return r.queryActivities(ctx, sql, args)
}

// GetAllWithWings retrieves every activity joined with its owning wing,
// for statistics aggregation. No cap: the data set is expected to stay small.
func (r *ActivityRepository) GetAllWithWings(ctx context.Context) ([]*models.ActivityWithWing, error) {
	cols := []string{
		"a.id", "a.wing_id", "a.title", "a.description", "a.activity_date",
		"a.faculty_coordinator", "a.report_url", "a.report_cloudinary_id",
		"w.id", "w.slug", "w.name",
	}
	sql, args, err := r.sb.Select(cols...).
		From("activities a").
		Join("wings w ON a.wing_id = w.id").
		OrderBy("a.activity_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build activities with wings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing activities with wings query")
		return nil, fmt.Errorf("error querying activities with wings: %w", err)
	}
	defer rows.Close()

	result := []*models.ActivityWithWing{}
	for rows.Next() {
		pair := &models.ActivityWithWing{}
		a := &pair.Activity
		w := &pair.Wing
		err := rows.Scan(
			&a.ID, &a.WingID, &a.Title, &a.Description, &a.ActivityDate,
			&a.FacultyCoordinator, &a.ReportURL, &a.ReportCloudinaryID,
			&w.ID, &w.Slug, &w.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning activity with wing row: %w", err)
		}
		result = append(result, pair)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity with wing rows: %w", err)
	}

	return result, nil
}

// queryActivities runs a prepared select and scans the result set
func (r *ActivityRepository) queryActivities(ctx context.Context, sql string, args []interface{}) ([]*models.Activity, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing activities query")
		return nil, fmt.Errorf("error querying activities: %w", err)
	}
	defer rows.Close()

	activities := []*models.Activity{}
	for rows.Next() {
		activity := &models.Activity{}
		if err := scanActivity(rows, activity); err != nil {
			return nil, fmt.Errorf("error scanning activity row: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return activities, nil
}

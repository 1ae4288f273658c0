// Package seed creates the default wings on first startup.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anvaya-club/backend/internal/app/repositories"
	"github.com/anvaya-club/backend/internal/pkg/logger"
)

type defaultWing struct {
	slug string
	name string
}

var defaultWings = []defaultWing{
	{"technical", "Technical Wing"},
	{"cultural", "Cultural Wing"},
	{"sports", "Sports Wing"},
	{"social-outreach", "Social Outreach Wing"},
	{"literary", "Literary Wing"},
}

// CreateDefaultData inserts the default wings that do not exist yet. Errors
// are collected so one failed wing does not block the rest.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	wingRepo := repositories.NewWingRepository(dbPool)
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	logger.Info().Msg("Checking/Creating default wings...")
	var finalErr error

	for _, wing := range defaultWings {
		_, err := wingRepo.GetBySlug(ctx, wing.slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.Error().Err(err).Str("slug", wing.slug).Msg("Error checking default wing")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		sql, args, err := sb.Insert("wings").
			Columns("slug", "name").
			Values(wing.slug, wing.name).
			ToSql()
		if err != nil {
			finalErr = errors.Join(finalErr, fmt.Errorf("failed to build wing insert: %w", err))
			continue
		}

		if _, err := dbPool.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Str("slug", wing.slug).Msg("Error creating default wing")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		logger.Info().Str("slug", wing.slug).Msg("Default wing created")
	}

	logger.Info().Msg("Default wing check/creation finished")
	return finalErr
}

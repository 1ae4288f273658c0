package services

import (
	"context"
	"sort"

	"github.com/anvaya-club/backend/internal/app/models/dto"
	"github.com/anvaya-club/backend/internal/pkg/apperrors"
)

// StatsService computes the per-wing activity aggregation
type StatsService interface {
	// GetActivityStatistics counts activities per wing, optionally filtered
	// to a single calendar year.
	GetActivityStatistics(ctx context.Context, year *int) (*dto.ActivityStatisticsResponse, error)
}

type statsService struct {
	activities activityStore
}

// NewStatsService creates a new StatsService
func NewStatsService(activities activityStore) StatsService {
	return &statsService{activities: activities}
}

func (s *statsService) GetActivityStatistics(ctx context.Context, year *int) (*dto.ActivityStatisticsResponse, error) {
	rows, err := s.activities.GetAllWithWings(ctx)
	if err != nil {
		return nil, apperrors.NewDatabase("Failed to load activities", err)
	}

	// Single pass: per-wing counts honoring the year filter, while the year
	// set always covers all data so clients can discover filterable years.
	yearSet := map[int]bool{}
	indexByWing := map[int64]int{}
	stats := []dto.WingActivityStats{}

	for _, row := range rows {
		activityYear := row.Activity.ActivityDate.Year()
		yearSet[activityYear] = true

		if year != nil && activityYear != *year {
			continue
		}

		idx, ok := indexByWing[row.Wing.ID]
		if !ok {
			stats = append(stats, dto.WingActivityStats{
				WingID:   row.Wing.ID,
				WingName: row.Wing.Name,
				WingSlug: row.Wing.Slug,
			})
			idx = len(stats) - 1
			indexByWing[row.Wing.ID] = idx
		}
		stats[idx].ActivityCount++
	}

	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].ActivityCount > stats[j].ActivityCount
	})

	availableYears := make([]int, 0, len(yearSet))
	for y := range yearSet {
		availableYears = append(availableYears, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(availableYears)))

	return &dto.ActivityStatisticsResponse{
		Statistics:     stats,
		AvailableYears: availableYears,
		FilteredYear:   year,
	}, nil
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/anvaya-club/backend/internal/app/models"
)

func statsFixture() *fakeActivityStore {
	wingA := models.Wing{ID: 1, Slug: "technical", Name: "Technical Wing"}
	wingB := models.Wing{ID: 2, Slug: "cultural", Name: "Cultural Wing"}

	date := func(year int) time.Time {
		return time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC)
	}

	store := newFakeActivityStore()
	store.withWings = []*models.ActivityWithWing{
		{Activity: models.Activity{ID: 1, WingID: 1, ActivityDate: date(2024)}, Wing: wingA},
		{Activity: models.Activity{ID: 2, WingID: 1, ActivityDate: date(2023)}, Wing: wingA},
		{Activity: models.Activity{ID: 3, WingID: 2, ActivityDate: date(2024)}, Wing: wingB},
	}
	return store
}

// TestStatisticsYearFilter checks the filtered counts and that the year set
// stays unfiltered.
func TestStatisticsYearFilter(t *testing.T) {
	svc := NewStatsService(statsFixture())

	year := 2024
	resp, err := svc.GetActivityStatistics(context.Background(), &year)
	if err != nil {
		t.Fatalf("GetActivityStatistics failed: %v", err)
	}

	if len(resp.Statistics) != 2 {
		t.Fatalf("Expected 2 wings in statistics, got %d", len(resp.Statistics))
	}
	for _, s := range resp.Statistics {
		if s.ActivityCount != 1 {
			t.Errorf("Expected count 1 for wing %s, got %d", s.WingSlug, s.ActivityCount)
		}
	}

	if len(resp.AvailableYears) != 2 || resp.AvailableYears[0] != 2024 || resp.AvailableYears[1] != 2023 {
		t.Errorf("Expected available years [2024 2023], got %v", resp.AvailableYears)
	}
	if resp.FilteredYear == nil || *resp.FilteredYear != 2024 {
		t.Errorf("Expected filtered year 2024, got %v", resp.FilteredYear)
	}
}

// TestStatisticsUnfiltered checks counts without a year filter, sorted
// descending by count.
func TestStatisticsUnfiltered(t *testing.T) {
	svc := NewStatsService(statsFixture())

	resp, err := svc.GetActivityStatistics(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetActivityStatistics failed: %v", err)
	}

	if len(resp.Statistics) != 2 {
		t.Fatalf("Expected 2 wings, got %d", len(resp.Statistics))
	}
	if resp.Statistics[0].WingSlug != "technical" || resp.Statistics[0].ActivityCount != 2 {
		t.Errorf("Expected technical with count 2 first, got %+v", resp.Statistics[0])
	}
	if resp.Statistics[1].ActivityCount != 1 {
		t.Errorf("Expected count 1 second, got %+v", resp.Statistics[1])
	}
	if resp.FilteredYear != nil {
		t.Errorf("Expected no filtered year, got %v", *resp.FilteredYear)
	}
}

// TestStatisticsEmpty checks the empty-data shape.
func TestStatisticsEmpty(t *testing.T) {
	svc := NewStatsService(newFakeActivityStore())

	resp, err := svc.GetActivityStatistics(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetActivityStatistics failed: %v", err)
	}
	if len(resp.Statistics) != 0 {
		t.Errorf("Expected empty statistics, got %v", resp.Statistics)
	}
	if len(resp.AvailableYears) != 0 {
		t.Errorf("Expected empty year set, got %v", resp.AvailableYears)
	}
}

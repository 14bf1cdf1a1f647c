package services

import (
	"testing"
	"time"

	"github.com/calrank/calrank/internal/models"
)

func TestTrackingStreak(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	tracked := func() *models.DailyEntry { return &models.DailyEntry{Calories: 1800} }

	cases := []struct {
		name    string
		entries map[string]*models.DailyEntry
		want    int
	}{
		{
			name:    "no entries at all",
			entries: map[string]*models.DailyEntry{},
			want:    0,
		},
		{
			name: "three day run ending today",
			entries: map[string]*models.DailyEntry{
				"2026-03-08": tracked(),
				"2026-03-09": tracked(),
				"2026-03-10": tracked(),
			},
			want: 3,
		},
		{
			name: "empty today falls back to yesterday",
			entries: map[string]*models.DailyEntry{
				"2026-03-08": tracked(),
				"2026-03-09": {Calories: 2000, Meals: []models.Meal{{Name: "a"}, {Name: "b"}, {Name: "c"}}},
				"2026-03-10": {},
			},
			want: 2,
		},
		{
			name: "missing today falls back to yesterday",
			entries: map[string]*models.DailyEntry{
				"2026-03-09": tracked(),
			},
			want: 1,
		},
		{
			name: "gap two days back breaks the run",
			entries: map[string]*models.DailyEntry{
				"2026-03-07": tracked(),
				"2026-03-08": tracked(),
				"2026-03-10": tracked(),
			},
			want: 1,
		},
		{
			name: "empty entry inside the run terminates it",
			entries: map[string]*models.DailyEntry{
				"2026-03-07": tracked(),
				"2026-03-08": {},
				"2026-03-09": tracked(),
				"2026-03-10": tracked(),
			},
			want: 2,
		},
		{
			name: "today and yesterday both idle",
			entries: map[string]*models.DailyEntry{
				"2026-03-08": tracked(),
				"2026-03-10": {},
			},
			want: 0,
		},
		{
			name: "steps alone qualify",
			entries: map[string]*models.DailyEntry{
				"2026-03-10": {Steps: 4000},
			},
			want: 1,
		},
		{
			name: "meals alone qualify",
			entries: map[string]*models.DailyEntry{
				"2026-03-10": {Meals: []models.Meal{{Name: "salad", Category: models.MealLunch}}},
			},
			want: 1,
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := TrackingStreak(testCase.entries, today, time.UTC)
			if got != testCase.want {
				t.Fatalf("expected streak %d, got %d", testCase.want, got)
			}
		})
	}
}

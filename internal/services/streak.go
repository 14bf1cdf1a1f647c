package services

import (
	"time"

	"github.com/calrank/calrank/internal/models"
)

// TrackingStreak walks backward day-by-day from today and counts
// consecutive days with actual tracking activity. A day qualifies when
// its entry has nonzero calories, nonzero steps or at least one meal; an
// entry that exists but is empty terminates the streak. A still-empty
// today does not zero out a live streak: when yesterday qualifies, the
// count simply starts there.
func TrackingStreak(entries map[string]*models.DailyEntry, today time.Time, location *time.Location) int {
	cursor := today
	if !dayQualifies(entries, DateString(cursor, location)) {
		cursor = cursor.AddDate(0, 0, -1)
		if !dayQualifies(entries, DateString(cursor, location)) {
			return 0
		}
	}

	streak := 0
	for dayQualifies(entries, DateString(cursor, location)) {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

func dayQualifies(entries map[string]*models.DailyEntry, day string) bool {
	entry := entries[day]
	if entry == nil {
		return false
	}
	return entry.Calories > 0 || entry.Steps > 0 || len(entry.Meals) > 0
}

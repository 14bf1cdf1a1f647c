package services

import (
	"math"
	"time"

	"github.com/calrank/calrank/internal/models"
)

// ProgressStats is the dashboard statistics block: recent averages plus
// overall goal progress and a naive linear completion estimate.
type ProgressStats struct {
	WeekAvgCalories  int      `json:"weekAvgCalories"`
	WeekWeightChange *float64 `json:"weekWeightChange"`
	TotalWeightLost  float64  `json:"totalWeightLost"`
	ProgressPercent  float64  `json:"progressPercent"`
	EstimatedDate    string   `json:"estimatedDate,omitempty"`
	DaysRemaining    int      `json:"daysRemaining"`
}

// BuildProgressStats derives the statistics block from the state. The
// week weight change needs at least two entries in range and stays nil
// otherwise; the completion estimate needs a positive average loss.
func BuildProgressStats(state *models.UserState, now time.Time, location *time.Location) ProgressStats {
	stats := ProgressStats{}

	weekEntries := lastNDaysEntries(state, now, location, 7)
	if len(weekEntries) > 0 {
		total := 0
		for _, entry := range weekEntries {
			total += entry.Calories
		}
		stats.WeekAvgCalories = int(math.Round(float64(total) / float64(len(weekEntries))))
	}

	weekWeights := WeightEntriesSince(state.WeightEntries, DateString(now.AddDate(0, 0, -7), location))
	if len(weekWeights) >= 2 {
		change := weekWeights[len(weekWeights)-1].Weight - weekWeights[0].Weight
		stats.WeekWeightChange = &change
	}

	latest := LatestWeight(state)
	stats.TotalWeightLost = state.Profile.StartWeight - latest

	totalToLose := state.Profile.StartWeight - state.Profile.TargetWeight
	if totalToLose > 0 {
		stats.ProgressPercent = math.Round(stats.TotalWeightLost/totalToLose*1000) / 10
	}

	daysActive := daysSinceStart(state.Profile.StartDate, now)
	if daysActive < 1 {
		daysActive = 1
	}
	avgWeeklyLoss := stats.TotalWeightLost / float64(daysActive) * 7
	remaining := latest - state.Profile.TargetWeight
	if avgWeeklyLoss > 0 && remaining > 0 {
		weeksRemaining := math.Ceil(remaining / avgWeeklyLoss)
		stats.DaysRemaining = int(weeksRemaining) * 7
		stats.EstimatedDate = DateString(now.AddDate(0, 0, stats.DaysRemaining), location)
	}

	return stats
}

// WeightEntriesSince returns the entries dated on or after the given
// day, sorted ascending, for chart ranges.
func WeightEntriesSince(entries []models.WeightEntry, day string) []models.WeightEntry {
	inRange := make([]models.WeightEntry, 0, len(entries))
	for _, entry := range SortedWeightEntries(entries) {
		if entry.Date >= day {
			inRange = append(inRange, entry)
		}
	}
	return inRange
}

func lastNDaysEntries(state *models.UserState, now time.Time, location *time.Location, days int) []*models.DailyEntry {
	entries := make([]*models.DailyEntry, 0, days)
	for offset := 0; offset < days; offset++ {
		day := DateString(now.AddDate(0, 0, -offset), location)
		if entry := state.DailyEntries[day]; entry != nil {
			entries = append(entries, entry)
		}
	}
	return entries
}

func daysSinceStart(startDate string, now time.Time) int {
	start, err := time.Parse(time.RFC3339, startDate)
	if err != nil {
		if start, err = ParseDay(startDate); err != nil {
			return 0
		}
	}
	return int(now.Sub(start).Hours() / 24)
}

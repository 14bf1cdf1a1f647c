package services

import (
	"sort"

	"github.com/calrank/calrank/internal/models"
)

// RecalcResult reports what a recalculation pass did. Changed signals
// whether a persistence flush is needed; a pass that scored nothing
// leaves the state untouched.
type RecalcResult struct {
	DaysScored int          `json:"daysScored"`
	TierUps    []TierChange `json:"tierUps"`
	Changed    bool         `json:"changed"`
}

// Recalculate scores every ledger day that is before today and after
// the last-calculated high-water mark, in ascending date order. Today is
// always excluded: a day's score is only final once it has elapsed.
// Running it twice in a row without new ledger days is a no-op.
func Recalculate(today string, state *models.UserState) RecalcResult {
	result := RecalcResult{TierUps: []TierChange{}}

	days := make([]string, 0, len(state.DailyEntries))
	for day := range state.DailyEntries {
		days = append(days, day)
	}
	sort.Strings(days)

	lastCalculated := state.Ranking.LastCalculated
	for _, day := range days {
		if day >= today {
			continue
		}
		if lastCalculated != "" && day <= lastCalculated {
			continue
		}

		score := ScoreDay(day, state)
		if change, leveledUp := ApplyDayScore(&state.Ranking, day, score); leveledUp {
			result.TierUps = append(result.TierUps, change)
		}
		result.DaysScored++
	}

	result.Changed = result.DaysScored > 0
	return result
}

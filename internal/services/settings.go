package services

import "github.com/calrank/calrank/internal/models"

// SetSupplementReminder toggles the daily supplement reminder.
func SetSupplementReminder(state *models.UserState, enabled bool) {
	state.Settings.SupplementReminder = enabled
}

// MarkSupplementsTaken records today as done; the reminder stays quiet
// until the next calendar day.
func MarkSupplementsTaken(state *models.UserState, today string) {
	state.Settings.SupplementTakenDate = today
}

// SupplementReminderDue reports whether the reminder should surface.
func SupplementReminderDue(state *models.UserState, today string) bool {
	if !state.Settings.SupplementReminder {
		return false
	}
	return state.Settings.SupplementTakenDate != today
}

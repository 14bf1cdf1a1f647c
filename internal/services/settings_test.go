package services

import (
	"testing"

	"github.com/calrank/calrank/internal/models"
)

func TestSupplementReminderDue(t *testing.T) {
	t.Parallel()

	state := models.NewUserState()
	if SupplementReminderDue(&state, "2026-03-10") {
		t.Fatal("reminder must stay quiet while disabled")
	}

	SetSupplementReminder(&state, true)
	if !SupplementReminderDue(&state, "2026-03-10") {
		t.Fatal("enabled reminder with nothing taken should be due")
	}

	MarkSupplementsTaken(&state, "2026-03-10")
	if SupplementReminderDue(&state, "2026-03-10") {
		t.Fatal("reminder must stay quiet for the rest of the day")
	}
	if !SupplementReminderDue(&state, "2026-03-11") {
		t.Fatal("reminder should surface again the next day")
	}
}

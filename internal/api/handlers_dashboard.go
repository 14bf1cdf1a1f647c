package api

import (
	"github.com/calrank/calrank/internal/models"
	"github.com/calrank/calrank/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Dashboard aggregates everything the main screen needs: today's
// totals against targets, the tracking streak, latest weight, progress
// statistics and the ranking summary. Reading today's entry never
// creates it; entries exist only once something is written.
func (handler *Handler) Dashboard(c *fiber.Ctx) error {
	state, err := handler.loadState(c)
	if err != nil {
		return err
	}

	today := handler.today()
	entry := state.DailyEntries[today]
	if entry == nil {
		entry = models.NewDailyEntry()
	}

	latestWeight := services.LatestWeight(&state)
	remaining := latestWeight - state.Profile.TargetWeight
	if remaining < 0 {
		remaining = 0
	}

	return c.JSON(fiber.Map{
		"date": today,
		"profile": fiber.Map{
			"name":           state.Profile.Name,
			"targetCalories": state.Profile.TargetCalories,
			"targetProtein":  state.Profile.TargetProtein,
			"targetWeight":   state.Profile.TargetWeight,
		},
		"today": fiber.Map{
			"calories":      entry.Calories,
			"protein":       entry.Protein,
			"steps":         entry.Steps,
			"stepsCalories": entry.StepsCalories,
			"meals":         entry.Meals,
		},
		"latestWeight":    latestWeight,
		"remainingWeight": remaining,
		"streak":          services.TrackingStreak(state.DailyEntries, handler.now(), handler.location),
		"stats":           services.BuildProgressStats(&state, handler.now(), handler.location),
		"ranking":         rankingSummary(&state.Ranking),
		"supplementDue":   services.SupplementReminderDue(&state, today),
	})
}

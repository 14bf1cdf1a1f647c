package api

import (
	"strconv"
	"strings"

	"github.com/calrank/calrank/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AddMeal appends a meal to today's entry. The ledger only accepts
// writes for the current day; past days are already scored or about to
// be, and the audit trail must not shift under them.
func (handler *Handler) AddMeal(c *fiber.Ctx) error {
	payload := mealPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	state, err := handler.loadState(c)
	if err != nil {
		return err
	}

	day := handler.today()
	meal, err := services.AddMeal(&state, day, services.MealInput{
		Name:     payload.Name,
		Calories: payload.Calories,
		Protein:  payload.Protein,
		Category: payload.Category,
	}, handler.now())
	if err != nil {
		return ledgerCommandError(c, err)
	}

	if err := handler.saveState(c, &state); err != nil {
		return err
	}

	entry := state.DailyEntries[day]
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"meal":     meal,
		"calories": entry.Calories,
		"protein":  entry.Protein,
	})
}

func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	mealID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}

	state, err := handler.loadState(c)
	if err != nil {
		return err
	}

	day := handler.today()
	if err := services.DeleteMeal(&state, day, mealID); err != nil {
		return ledgerCommandError(c, err)
	}

	if err := handler.saveState(c, &state); err != nil {
		return err
	}

	entry := state.DailyEntries[day]
	return c.JSON(fiber.Map{
		"ok":       true,
		"calories": entry.Calories,
		"protein":  entry.Protein,
	})
}

// SetSteps records today's step count, last write wins.
func (handler *Handler) SetSteps(c *fiber.Ctx) error {
	payload := stepsPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	state, err := handler.loadState(c)
	if err != nil {
		return err
	}

	day := handler.today()
	if err := services.SetSteps(&state, day, payload.Steps); err != nil {
		return ledgerCommandError(c, err)
	}

	if err := handler.saveState(c, &state); err != nil {
		return err
	}

	entry := state.DailyEntries[day]
	return c.JSON(fiber.Map{
		"steps":         entry.Steps,
		"stepsCalories": entry.StepsCalories,
	})
}

// UpsertWeight writes a weight for any date, overwriting an existing
// entry for that date.
func (handler *Handler) UpsertWeight(c *fiber.Ctx) error {
	payload := weightPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	state, err := handler.loadState(c)
	if err != nil {
		return err
	}

	day := strings.TrimSpace(payload.Date)
	if day == "" {
		day = handler.today()
	}

	created, err := services.UpsertWeight(&state, day, payload.Weight)
	if err != nil {
		return ledgerCommandError(c, err)
	}

	if err := handler.saveState(c, &state); err != nil {
		return err
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"date":          day,
		"weight":        payload.Weight,
		"currentWeight": state.Profile.CurrentWeight,
	})
}

// Weights returns the entries of the trailing range, sorted by date,
// for the progress chart.
func (handler *Handler) Weights(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days <= 0 {
		days = 30
	}

	state, err := handler.loadState(c)
	if err != nil {
		return err
	}

	since := services.DateString(handler.now().AddDate(0, 0, -days), handler.location)
	return c.JSON(fiber.Map{
		"entries": services.WeightEntriesSince(state.WeightEntries, since),
	})
}

package api

import (
	"github.com/calrank/calrank/internal/services"
	"github.com/gofiber/fiber/v2"
)

// UpdateProfile applies edited setup parameters and recomputes the
// derived targets. Start weight and start date are pinned at
// registration and never rewritten here; current weight stays derived
// from the weight log.
func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	payload := profilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	state, err := handler.loadState(c)
	if err != nil {
		return err
	}

	candidate := state.Profile
	applyProfilePayload(&candidate, payload)
	if err := services.ValidateProfile(&candidate); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	services.ApplyDerivedTargets(&candidate)

	state.Profile = candidate
	if err := handler.saveState(c, &state); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"profile": state.Profile})
}

// Profile returns the stored profile including derived targets.
func (handler *Handler) Profile(c *fiber.Ctx) error {
	state, err := handler.loadState(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"profile": state.Profile, "bmi": services.BMI(&state.Profile)})
}

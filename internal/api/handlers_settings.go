package api

import (
	"github.com/calrank/calrank/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) UpdateSupplementReminder(c *fiber.Ctx) error {
	payload := supplementPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	state, err := handler.loadState(c)
	if err != nil {
		return err
	}

	services.SetSupplementReminder(&state, payload.Enabled)
	if err := handler.saveState(c, &state); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"supplementReminder": state.Settings.SupplementReminder})
}

func (handler *Handler) MarkSupplementsTaken(c *fiber.Ctx) error {
	state, err := handler.loadState(c)
	if err != nil {
		return err
	}

	services.MarkSupplementsTaken(&state, handler.today())
	if err := handler.saveState(c, &state); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true})
}

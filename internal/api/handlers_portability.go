package api

import (
	"fmt"

	"github.com/calrank/calrank/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Export streams the full state document as a local JSON backup.
func (handler *Handler) Export(c *fiber.Ctx) error {
	state, err := handler.loadState(c)
	if err != nil {
		return err
	}

	document, marshalErr := services.ExportState(&state)
	if marshalErr != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export state")
	}

	fileName := fmt.Sprintf("calrank-backup-%s.json", handler.today())
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Send(document)
}

// Import replaces the caller's entire state with an uploaded backup.
// The document is validated structurally and then saved wholesale; the
// next recalculation continues from its high-water mark.
func (handler *Handler) Import(c *fiber.Ctx) error {
	state, err := services.ImportState(c.Body())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.saveState(c, &state); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true})
}

package api

import (
	"errors"
	"time"

	"github.com/calrank/calrank/internal/models"
	"github.com/calrank/calrank/internal/services"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// ledgerCommandError maps service validation failures onto HTTP codes.
func ledgerCommandError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMealNotFound), errors.Is(err, services.ErrNoEntryForDay):
		return apiError(c, fiber.StatusNotFound, err.Error())
	default:
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(contextUserKey).(*models.User)
	return user
}

// loadState fetches the caller's state document. A missing document for
// an authenticated user means registration never finished; the client
// must restart setup.
func (handler *Handler) loadState(c *fiber.Ctx) (models.UserState, error) {
	user := currentUser(c)
	state, found, err := handler.repos.States.Load(user.ID)
	if err != nil {
		return models.UserState{}, apiError(c, fiber.StatusInternalServerError, "failed to load state")
	}
	if !found {
		return models.UserState{}, apiError(c, fiber.StatusConflict, "setup incomplete")
	}
	return state, nil
}

// saveState flushes the full document once and lets the leaderboard feed
// push fresh snapshots. A failed save is retryable: the in-memory state
// stays authoritative and the next successful save carries everything.
func (handler *Handler) saveState(c *fiber.Ctx, state *models.UserState) error {
	user := currentUser(c)
	if err := handler.repos.States.Save(user.ID, state); err != nil {
		return apiError(c, fiber.StatusServiceUnavailable, "failed to persist state, retry")
	}
	handler.feed.Broadcast()
	return nil
}

func (handler *Handler) today() string {
	return services.DateString(handler.now(), handler.location)
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}

package api

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/calrank/calrank/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// Leaderboard returns a one-shot projection of the current top-50
// snapshot. A failed fetch degrades to an empty placeholder view; the
// caller's own ranking state is never affected.
func (handler *Handler) Leaderboard(c *fiber.Ctx) error {
	userID := currentUser(c).ID

	snapshot, err := handler.repos.States.TopByRankPoints(services.LeaderboardLimit)
	if err != nil {
		return c.JSON(fiber.Map{
			"entries":     []services.LeaderboardEntry{},
			"placement":   services.PlacementUnranked,
			"total":       0,
			"unavailable": true,
		})
	}

	view := services.BuildLeaderboard(snapshot, userID, handler.now(), handler.location)
	return c.JSON(view)
}

// LeaderboardStream holds a feed subscription open for the session and
// pushes a re-projected view as a server-sent event whenever any top-50
// point total changes. The subscription is released when the client
// disconnects or the feed shuts down; release is idempotent.
func (handler *Handler) LeaderboardStream(c *fiber.Ctx) error {
	userID := currentUser(c).ID

	subscription, err := handler.feed.Subscribe()
	if err != nil {
		return apiError(c, fiber.StatusServiceUnavailable, "leaderboard unavailable")
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set("Connection", "keep-alive")

	now := handler.now()
	location := handler.location
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(writer *bufio.Writer) {
		defer subscription.Unsubscribe()

		for snapshot := range subscription.Updates() {
			view := services.BuildLeaderboard(snapshot, userID, now, location)
			payload, err := json.Marshal(view)
			if err != nil {
				return
			}
			if _, err := fmt.Fprintf(writer, "data: %s\n\n", payload); err != nil {
				return
			}
			if err := writer.Flush(); err != nil {
				return
			}
		}
	}))
	return nil
}

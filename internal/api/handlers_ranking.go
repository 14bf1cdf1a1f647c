package api

import (
	"github.com/calrank/calrank/internal/models"
	"github.com/calrank/calrank/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Recalculate scores every completed, not-yet-scored ledger day and
// flushes the state once. Sessions call it on activation, before the
// dashboard and leaderboard figures are trusted. With nothing eligible
// it is a no-op and skips the write entirely.
func (handler *Handler) Recalculate(c *fiber.Ctx) error {
	state, err := handler.loadState(c)
	if err != nil {
		return err
	}

	result := services.Recalculate(handler.today(), &state)
	if result.Changed {
		if err := handler.saveState(c, &state); err != nil {
			return err
		}
	}

	return c.JSON(fiber.Map{
		"daysScored": result.DaysScored,
		"tierUps":    result.TierUps,
		"ranking":    rankingSummary(&state.Ranking),
	})
}

// RankingStatus reports the caller's tier, points, progress to the next
// tier and top-50 placement.
func (handler *Handler) RankingStatus(c *fiber.Ctx) error {
	state, err := handler.loadState(c)
	if err != nil {
		return err
	}

	summary := rankingSummary(&state.Ranking)

	placement := services.PlacementUnranked
	snapshot, err := handler.repos.States.TopByRankPoints(services.LeaderboardLimit)
	if err == nil {
		view := services.BuildLeaderboard(snapshot, currentUser(c).ID, handler.now(), handler.location)
		placement = view.Placement
	}
	summary["placement"] = placement

	return c.JSON(summary)
}

// RankingHistory returns the per-day audit trail, newest first.
func (handler *Handler) RankingHistory(c *fiber.Ctx) error {
	state, err := handler.loadState(c)
	if err != nil {
		return err
	}

	history := state.Ranking.RankHistory
	reversed := make([]any, 0, len(history))
	for index := len(history) - 1; index >= 0; index-- {
		reversed = append(reversed, history[index])
	}
	return c.JSON(fiber.Map{"history": reversed})
}

// RankTable exposes the static tier ladder.
func (handler *Handler) RankTable(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"tiers": services.RankTiers()})
}

func rankingSummary(ranking *models.RankingState) fiber.Map {
	tier := services.TierByIndex(ranking.CurrentRank)
	summary := fiber.Map{
		"rankPoints":        ranking.RankPoints,
		"currentRank":       ranking.CurrentRank,
		"tier":              tier,
		"totalPointsEarned": ranking.TotalPointsEarned,
		"totalPointsLost":   ranking.TotalPointsLost,
		"lastCalculated":    ranking.LastCalculated,
	}
	if threshold, ok := services.NextTierThreshold(ranking.CurrentRank); ok {
		summary["nextTierThreshold"] = threshold
	}
	return summary
}

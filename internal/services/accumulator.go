package services

import "github.com/calrank/calrank/internal/models"

// TierChange describes a rank transition produced while folding a day's
// score into the running state. It is an event value, never persisted.
type TierChange struct {
	Date     string   `json:"date"`
	FromTier int      `json:"fromTier"`
	ToTier   int      `json:"toTier"`
	From     RankTier `json:"from"`
	To       RankTier `json:"to"`
}

// ApplyDayScore folds one day's score into the ranking state: lifetime
// counters grow monotonically, the running total is clamped at zero, the
// current tier is re-derived from the rank table and an append-only
// history entry records the post-update state. Days must be applied in
// strictly increasing date order; the zero floor and tier transition
// detection make the fold non-commutative across dates.
func ApplyDayScore(ranking *models.RankingState, day string, score DayScore) (TierChange, bool) {
	ranking.RankPoints += score.Net
	ranking.TotalPointsEarned += score.Earned
	ranking.TotalPointsLost += score.Lost

	if ranking.RankPoints < 0 {
		ranking.RankPoints = 0
	}

	previousTier := ranking.CurrentRank
	ranking.CurrentRank = TierForPoints(ranking.RankPoints)

	ranking.RankHistory = append(ranking.RankHistory, models.RankHistoryEntry{
		Date:         day,
		PointsEarned: score.Earned,
		PointsLost:   score.Lost,
		NetPoints:    score.Net,
		TotalPoints:  ranking.RankPoints,
		Rank:         ranking.CurrentRank,
		Breakdown:    score.Breakdown,
	})
	ranking.LastCalculated = day

	if ranking.CurrentRank > previousTier {
		return TierChange{
			Date:     day,
			FromTier: previousTier,
			ToTier:   ranking.CurrentRank,
			From:     TierByIndex(previousTier),
			To:       TierByIndex(ranking.CurrentRank),
		}, true
	}
	return TierChange{}, false
}

package services

import (
	"time"

	"github.com/calrank/calrank/internal/models"
)

// LeaderboardLimit bounds the standing top-N query; 50 entries keep
// placement accurate without unbounded read cost.
const LeaderboardLimit = 50

// PlacementUnranked is reported when the requesting user is outside the
// top-N snapshot. Ranked placements are 1-based.
const PlacementUnranked = 0

type LeaderboardEntry struct {
	Position      int      `json:"position"`
	Name          string   `json:"name"`
	Points        int      `json:"points"`
	TierIndex     int      `json:"tierIndex"`
	Tier          RankTier `json:"tier"`
	Streak        int      `json:"streak"`
	WeightChange  float64  `json:"weightChange"`
	IsCurrentUser bool     `json:"isCurrentUser"`
}

type LeaderboardView struct {
	Entries   []LeaderboardEntry `json:"entries"`
	Placement int                `json:"placement"`
	Total     int                `json:"total"`
}

// BuildLeaderboard projects a top-N snapshot (already ordered descending
// by rank points) into display entries plus the requesting user's
// placement. Tier, streak and total weight change are derived per entry
// from that user's own document; the projector never touches the
// requesting user's ranking state.
func BuildLeaderboard(snapshot []models.RankedUserState, currentUserID uint, now time.Time, location *time.Location) LeaderboardView {
	view := LeaderboardView{
		Entries:   make([]LeaderboardEntry, 0, len(snapshot)),
		Placement: PlacementUnranked,
		Total:     len(snapshot),
	}

	for index, ranked := range snapshot {
		state := ranked.State
		points := state.Ranking.RankPoints
		tierIndex := TierForPoints(points)

		entry := LeaderboardEntry{
			Position:      index + 1,
			Name:          state.Profile.Name,
			Points:        points,
			TierIndex:     tierIndex,
			Tier:          TierByIndex(tierIndex),
			Streak:        TrackingStreak(state.DailyEntries, now, location),
			WeightChange:  TotalWeightChange(&state),
			IsCurrentUser: ranked.UserID == currentUserID,
		}
		if entry.IsCurrentUser {
			view.Placement = index + 1
		}
		view.Entries = append(view.Entries, entry)
	}

	return view
}

// TotalWeightChange reports start weight minus latest logged weight;
// positive means loss.
func TotalWeightChange(state *models.UserState) float64 {
	return state.Profile.StartWeight - LatestWeight(state)
}

// LatestWeight returns the most recently dated weight entry, falling
// back to the profile's current weight when nothing was logged yet.
func LatestWeight(state *models.UserState) float64 {
	latestDate := ""
	weight := state.Profile.CurrentWeight
	for _, entry := range state.WeightEntries {
		if entry.Date > latestDate {
			latestDate = entry.Date
			weight = entry.Weight
		}
	}
	return weight
}

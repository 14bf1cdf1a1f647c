package services

import (
	"testing"

	"github.com/calrank/calrank/internal/models"
)

func TestApplyDayScoreAccumulates(t *testing.T) {
	t.Parallel()

	ranking := models.RankingState{RankHistory: []models.RankHistoryEntry{}}

	change, leveledUp := ApplyDayScore(&ranking, "2026-03-01", DayScore{Earned: 120, Lost: 20, Net: 100})
	if leveledUp {
		t.Fatalf("unexpected tier change: %+v", change)
	}
	if ranking.RankPoints != 100 {
		t.Fatalf("expected 100 rank points, got %d", ranking.RankPoints)
	}
	if ranking.TotalPointsEarned != 120 || ranking.TotalPointsLost != 20 {
		t.Fatalf("unexpected lifetime counters: earned=%d lost=%d", ranking.TotalPointsEarned, ranking.TotalPointsLost)
	}
	if ranking.LastCalculated != "2026-03-01" {
		t.Fatalf("expected last calculated 2026-03-01, got %q", ranking.LastCalculated)
	}
	if len(ranking.RankHistory) != 1 {
		t.Fatalf("expected one history entry, got %d", len(ranking.RankHistory))
	}
	if ranking.RankHistory[0].TotalPoints != 100 || ranking.RankHistory[0].Rank != 0 {
		t.Fatalf("unexpected history entry: %+v", ranking.RankHistory[0])
	}
}

func TestApplyDayScoreClampsAtZero(t *testing.T) {
	t.Parallel()

	ranking := models.RankingState{RankPoints: 30, TotalPointsLost: 10}

	ApplyDayScore(&ranking, "2026-03-01", DayScore{Earned: 0, Lost: 75, Net: -75})
	if ranking.RankPoints != 0 {
		t.Fatalf("expected clamp to zero, got %d", ranking.RankPoints)
	}
	// Lifetime counters are not clamped; they record what actually happened.
	if ranking.TotalPointsLost != 85 {
		t.Fatalf("expected lifetime lost 85, got %d", ranking.TotalPointsLost)
	}
	if ranking.RankHistory[0].TotalPoints != 0 {
		t.Fatalf("history must record the clamped total, got %d", ranking.RankHistory[0].TotalPoints)
	}
}

func TestApplyDayScoreReportsTierUp(t *testing.T) {
	t.Parallel()

	ranking := models.RankingState{RankPoints: 190, CurrentRank: 0}

	change, leveledUp := ApplyDayScore(&ranking, "2026-03-05", DayScore{Earned: 50, Lost: 0, Net: 50})
	if !leveledUp {
		t.Fatal("expected a tier change crossing 200 points")
	}
	if change.FromTier != 0 || change.ToTier != 1 {
		t.Fatalf("expected 0 -> 1, got %d -> %d", change.FromTier, change.ToTier)
	}
	if change.From.Name != "Iron" || change.To.Name != "Gold" {
		t.Fatalf("expected Iron -> Gold, got %s -> %s", change.From.Name, change.To.Name)
	}
	if change.Date != "2026-03-05" {
		t.Fatalf("expected change dated 2026-03-05, got %q", change.Date)
	}
	if ranking.CurrentRank != 1 {
		t.Fatalf("expected current rank 1, got %d", ranking.CurrentRank)
	}
}

func TestApplyDayScoreNoEventOnDowngrade(t *testing.T) {
	t.Parallel()

	ranking := models.RankingState{RankPoints: 210, CurrentRank: 1}

	_, leveledUp := ApplyDayScore(&ranking, "2026-03-06", DayScore{Earned: 0, Lost: 60, Net: -60})
	if leveledUp {
		t.Fatal("dropping below a threshold must not emit a tier change")
	}
	if ranking.CurrentRank != 0 {
		t.Fatalf("expected derived rank 0 after the drop, got %d", ranking.CurrentRank)
	}
}

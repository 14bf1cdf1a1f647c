package services

import (
	"encoding/json"
	"errors"

	"github.com/calrank/calrank/internal/models"
)

var ErrImportMalformed = errors.New("import document is not a valid state backup")

// ExportState renders the full state document as indented JSON for a
// local backup. The format is the exact persisted structure; there is no
// separate export schema.
func ExportState(state *models.UserState) ([]byte, error) {
	return json.MarshalIndent(state, "", "  ")
}

// ImportState parses a backup produced by ExportState. The next save
// overwrites the stored document with the imported one wholesale, so
// missing collections are normalized and the ranking floor re-asserted,
// but nothing else is rewritten.
func ImportState(data []byte) (models.UserState, error) {
	state := models.NewUserState()
	if err := json.Unmarshal(data, &state); err != nil {
		return models.UserState{}, ErrImportMalformed
	}

	if state.DailyEntries == nil {
		state.DailyEntries = map[string]*models.DailyEntry{}
	}
	if state.WeightEntries == nil {
		state.WeightEntries = []models.WeightEntry{}
	}
	if state.Ranking.RankHistory == nil {
		state.Ranking.RankHistory = []models.RankHistoryEntry{}
	}
	if state.Ranking.RankPoints < 0 {
		state.Ranking.RankPoints = 0
	}
	state.Ranking.CurrentRank = TierForPoints(state.Ranking.RankPoints)

	return state, nil
}

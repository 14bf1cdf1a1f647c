package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/calrank/calrank/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRepository is the state store: one JSON document per user,
// written as a full overwrite. The mirrored rank_points column exists
// only so the leaderboard query can order and limit inside SQL.
type StateRepository struct {
	database *gorm.DB
}

func NewStateRepository(database *gorm.DB) *StateRepository {
	return &StateRepository{database: database}
}

func (repo *StateRepository) Load(userID uint) (models.UserState, bool, error) {
	var record models.UserStateRecord
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&record)
	if result.Error != nil {
		return models.UserState{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserState{}, false, nil
	}

	state := models.NewUserState()
	if err := json.Unmarshal([]byte(record.Document), &state); err != nil {
		return models.UserState{}, false, fmt.Errorf("decode state document for user %d: %w", userID, err)
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
	return state, true, nil
}

func (repo *StateRepository) Save(userID uint, state *models.UserState) error {
	document, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state document for user %d: %w", userID, err)
	}

	record := models.UserStateRecord{
		UserID:     userID,
		RankPoints: state.Ranking.RankPoints,
		Document:   string(document),
		UpdatedAt:  time.Now(),
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rank_points", "document", "updated_at"}),
	}).Create(&record).Error
}

func (repo *StateRepository) Delete(userID uint) error {
	return repo.database.Delete(&models.UserStateRecord{}, "user_id = ?", userID).Error
}

// TopByRankPoints returns up to limit completed-setup states ordered
// descending by point total, ties broken by earliest signup.
func (repo *StateRepository) TopByRankPoints(limit int) ([]models.RankedUserState, error) {
	records := make([]models.UserStateRecord, 0, limit)
	if err := repo.database.
		Order("rank_points DESC, user_id ASC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}

	ranked := make([]models.RankedUserState, 0, len(records))
	for _, record := range records {
		state := models.NewUserState()
		if err := json.Unmarshal([]byte(record.Document), &state); err != nil {
			return nil, fmt.Errorf("decode state document for user %d: %w", record.UserID, err)
		}
		if !state.SetupComplete {
			continue
		}
		ranked = append(ranked, models.RankedUserState{UserID: record.UserID, State: state})
	}
	return ranked, nil
}

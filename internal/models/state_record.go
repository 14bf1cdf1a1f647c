package models

import "time"

// UserStateRecord is the storage row behind the state store. Document is
// the JSON-serialized UserState; RankPoints mirrors the document's
// ranking.rankPoints so the leaderboard query can order without parsing
// every payload.
type UserStateRecord struct {
	UserID     uint      `gorm:"primaryKey"`
	RankPoints int       `gorm:"not null;default:0;index"`
	Document   string    `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (UserStateRecord) TableName() string {
	return "user_states"
}

package models

import (
	"time"
)

// Favorite joins a user to a game. The composite unique index makes the
// at-most-one-row-per-pair invariant a storage guarantee rather than an
// application-level check.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_game" json:"userId"`
	GameID    uint      `gorm:"uniqueIndex:idx_user_game" json:"gameId"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations (for eager loading)
	Game Game `gorm:"foreignKey:GameID" json:"game,omitempty"`
}

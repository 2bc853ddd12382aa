package model

import (
	"time"

	"github.com/google/uuid"
)

// GameModel mirrors the 'games' catalog table.
type GameModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	Price     float64   `gorm:"type:numeric(10,2);not null"`
	Publisher string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GameModel) TableName() string {
	return "games"
}

// UserGameModel mirrors the 'user_games' ownership table. The composite
// primary key enforces one entry per (user, game) pair at the schema level.
type UserGameModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	GameID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	AcquiredAt time.Time `gorm:"not null"`

	Game *GameModel `gorm:"foreignKey:GameID"`
}

// TableName explicitly sets the table name for GORM.
func (UserGameModel) TableName() string {
	return "user_games"
}

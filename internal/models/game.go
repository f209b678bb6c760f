package models

import "time"

type Game struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	GameDataID          uint       `gorm:"not null" json:"game_data_id"`
	GameData            GameData   `gorm:"foreignKey:GameDataID" json:"game_data,omitempty"`
	ChatID              string     `gorm:"size:20;not null;index" json:"chat_id"`
	ChatMessageID       int64      `gorm:"default:0" json:"chat_message_id,omitempty"`
	GuessedWord         string     `gorm:"size:45;not null" json:"guessed_word"`
	RequiredPlayerCount int        `gorm:"not null" json:"required_player_count"`
	CurrentPlayerID     uint       `gorm:"default:0" json:"current_player_id"`
	Players             []Player   `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"players,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	FinishedAt          *time.Time `json:"finished_at,omitempty"`
}

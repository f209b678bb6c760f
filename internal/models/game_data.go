package models

// GameData is one question/answer pair from the host's pool.
type GameData struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"size:255;not null" json:"question"`
	Answer   string `gorm:"size:45;not null" json:"answer"`
}

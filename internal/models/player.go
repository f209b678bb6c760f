package models

type Player struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	GameID     uint `gorm:"not null;index" json:"game_id"`
	UserID     uint `gorm:"not null;index" json:"user_id"`
	User       User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Score      int  `gorm:"not null;default:0" json:"score"`
	Eliminated bool `gorm:"not null;default:false" json:"eliminated"`
	IsWinner   bool `gorm:"not null;default:false" json:"is_winner"`
}

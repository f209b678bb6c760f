package models

import "time"

// User is a VK profile known to the bot. Players reference users by id,
// one user can play in many games.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VkID      int64     `gorm:"not null;uniqueIndex" json:"vk_id"`
	Name      string    `gorm:"size:45;not null" json:"name"`
	LastName  string    `gorm:"size:45;not null" json:"last_name"`
	Username  string    `gorm:"size:100;not null" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

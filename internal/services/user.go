package services

import (
	"errors"

	"github.com/Similization/kts-project/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ResolveOrCreate finds the user by VK id or creates the record. The
// profile fields are refreshed on every resolve, screen names change.
func (s *UserService) ResolveOrCreate(vkID int64, name, lastName, username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("vk_id = ?", vkID).First(&user).Error; err == nil {
		if user.Name != name || user.LastName != lastName || user.Username != username {
			user.Name = name
			user.LastName = lastName
			user.Username = username
			if err := s.db.Save(&user).Error; err != nil {
				return nil, err
			}
		}
		return &user, nil
	}

	user = models.User{
		VkID:     vkID,
		Name:     name,
		LastName: lastName,
		Username: username,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func (s *UserService) GetByVkID(vkID int64) (*models.User, error) {
	var user models.User
	if err := s.db.Where("vk_id = ?", vkID).First(&user).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

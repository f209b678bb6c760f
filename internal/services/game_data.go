package services

import (
	"errors"

	"github.com/Similization/kts-project/internal/models"

	"gorm.io/gorm"
)

type GameDataService struct {
	db *gorm.DB
}

func NewGameDataService(db *gorm.DB) *GameDataService {
	return &GameDataService{db: db}
}

func (s *GameDataService) Create(question, answer string) (*models.GameData, error) {
	data := models.GameData{Question: question, Answer: answer}
	if err := s.db.Create(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *GameDataService) Get(id uint) (*models.GameData, error) {
	var data models.GameData
	if err := s.db.First(&data, id).Error; err != nil {
		return nil, errors.New("game data not found")
	}
	return &data, nil
}

func (s *GameDataService) List() ([]models.GameData, error) {
	var list []models.GameData
	if err := s.db.Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *GameDataService) Update(id uint, question, answer string) (*models.GameData, error) {
	var data models.GameData
	if err := s.db.First(&data, id).Error; err != nil {
		return nil, errors.New("game data not found")
	}

	data.Question = question
	data.Answer = answer
	if err := s.db.Save(&data).Error; err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *GameDataService) Delete(id uint) error {
	res := s.db.Delete(&models.GameData{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("game data not found")
	}
	return nil
}

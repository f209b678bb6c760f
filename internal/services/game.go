package services

import (
	"errors"

	"github.com/Similization/kts-project/internal/models"

	"gorm.io/gorm"
)

// GameService stores games and players. It implements the dispatcher's
// persistence gateway plus the read queries the REST API serves.
type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

// LoadUnfinishedGames returns games without a finish timestamp, with
// players, their users and the question preloaded. Used for session
// recovery on startup.
func (s *GameService) LoadUnfinishedGames() ([]models.Game, error) {
	var games []models.Game
	if err := s.db.Where("finished_at IS NULL").
		Preload("GameData").
		Preload("Players").
		Preload("Players.User").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *GameService) CreateGame(g *models.Game) error {
	return s.db.Create(g).Error
}

func (s *GameService) SaveGame(g *models.Game) error {
	return s.db.Omit("Players", "GameData").Save(g).Error
}

func (s *GameService) SavePlayer(p *models.Player) error {
	return s.db.Omit("User").Save(p).Error
}

// PickRandomGameData returns a random question/answer pair.
func (s *GameService) PickRandomGameData() (*models.GameData, error) {
	var data models.GameData
	if err := s.db.Order("RANDOM()").First(&data).Error; err != nil {
		return nil, errors.New("no game data available")
	}
	return &data, nil
}

func (s *GameService) GetGame(gameID uint) (*models.Game, error) {
	var g models.Game
	if err := s.db.Preload("GameData").
		Preload("Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("score DESC")
		}).
		Preload("Players.User").
		First(&g, gameID).Error; err != nil {
		return nil, errors.New("game not found")
	}
	return &g, nil
}

func (s *GameService) ListGames() ([]models.Game, error) {
	var games []models.Game
	if err := s.db.Preload("GameData").
		Preload("Players").
		Preload("Players.User").
		Order("created_at DESC").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// LatestGame returns the most recent game of a chat.
func (s *GameService) LatestGame(chatID string) (*models.Game, error) {
	var g models.Game
	if err := s.db.Where("chat_id = ?", chatID).
		Preload("GameData").
		Preload("Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("score DESC")
		}).
		Preload("Players.User").
		Order("created_at DESC").
		First(&g).Error; err != nil {
		return nil, errors.New("no games in this chat")
	}
	return &g, nil
}

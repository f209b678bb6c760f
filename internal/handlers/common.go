package handlers

import "github.com/Similization/kts-project/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type GameData = models.GameData
type Game = models.Game
type User = models.User

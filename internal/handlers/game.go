package handlers

import (
	"net/http"
	"strconv"

	"github.com/Similization/kts-project/internal/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// ListGames godoc
// @Summary      List games with scoreboards
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Game
// @Router       /api/v1/games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.gameService.ListGames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, games)
}

// GetGame godoc
// @Summary      Get one game
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} Game
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game id"})
		return
	}

	game, err := h.gameService.GetGame(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, game)
}

// LatestGame godoc
// @Summary      Latest game of a chat
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        chat_id query string true "Chat ID"
// @Success      200 {object} Game
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/games/latest [get]
func (h *GameHandler) LatestGame(c *gin.Context) {
	chatID := c.Query("chat_id")
	if chatID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "chat_id is required"})
		return
	}

	game, err := h.gameService.LatestGame(chatID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, game)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/Similization/kts-project/internal/services"

	"github.com/gin-gonic/gin"
)

type GameDataHandler struct {
	gameDataService *services.GameDataService
}

func NewGameDataHandler(gameDataService *services.GameDataService) *GameDataHandler {
	return &GameDataHandler{gameDataService: gameDataService}
}

type GameDataRequest struct {
	Question string `json:"question" binding:"required,max=255" example:"Самая длинная река в мире"`
	Answer   string `json:"answer" binding:"required,max=45" example:"Амазонка"`
}

// CreateGameData godoc
// @Summary      Add a question/answer pair
// @Tags         game-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GameDataRequest true "Question and answer"
// @Success      201 {object} GameData
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/game-data [post]
func (h *GameDataHandler) CreateGameData(c *gin.Context) {
	var req GameDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	data, err := h.gameDataService.Create(req.Question, req.Answer)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, data)
}

// ListGameData godoc
// @Summary      List question/answer pairs
// @Tags         game-data
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} GameData
// @Router       /api/v1/game-data [get]
func (h *GameDataHandler) ListGameData(c *gin.Context) {
	list, err := h.gameDataService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetGameData godoc
// @Summary      Get one question/answer pair
// @Tags         game-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game data ID"
// @Success      200 {object} GameData
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/game-data/{id} [get]
func (h *GameDataHandler) GetGameData(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game data id"})
		return
	}

	data, err := h.gameDataService.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}

// UpdateGameData godoc
// @Summary      Update a question/answer pair
// @Tags         game-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game data ID"
// @Param        request body GameDataRequest true "Question and answer"
// @Success      200 {object} GameData
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/game-data/{id} [put]
func (h *GameDataHandler) UpdateGameData(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game data id"})
		return
	}

	var req GameDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	data, err := h.gameDataService.Update(uint(id), req.Question, req.Answer)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}

// DeleteGameData godoc
// @Summary      Delete a question/answer pair
// @Tags         game-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game data ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/game-data/{id} [delete]
func (h *GameDataHandler) DeleteGameData(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid game data id"})
		return
	}

	if err := h.gameDataService.Delete(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "game data deleted"})
}

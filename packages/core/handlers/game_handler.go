package handlers

import (
	"errors"
	"net/http"

	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

func gameWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrDuplicatePlayer),
		errors.Is(err, services.ErrScoreMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// GetGames lists all games
// @Summary List games
// @Description All games newest first, with MOTM, scorers and assisters
// @Tags games
// @Produce json
// @Success 200 {object} map[string][]models.GameListItem
// @Failure 500 {object} map[string]string
// @Router /games [get]
func (h *GameHandler) GetGames(c *gin.Context) {
	games, err := h.gameService.GetGames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve games",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"games": games})
}

// GetGame retrieves one game with its stat lines
// @Summary Get game by ID
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} models.GameResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid game ID",
		})
		return
	}

	game, err := h.gameService.GetGame(id)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Game not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, game)
}

// CreateGame records a new game
// @Summary Create a game
// @Description Record a game with its player stat lines (manager only). Submitted scores must match the stat totals.
// @Tags games
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param game body models.CreateGameRequest true "Game data"
// @Success 201 {object} models.GameResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req models.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.CreateGame(req)
	if err != nil {
		gameWriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// UpdateGame edits a game
// @Summary Update a game
// @Description Update date/scores and optionally replace the stat lines (manager only)
// @Tags games
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param game body models.UpdateGameRequest true "Fields to update"
// @Success 200 {object} models.GameResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid game ID",
		})
		return
	}

	var req models.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.UpdateGame(id, req)
	if err != nil {
		gameWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// DeleteGame deletes a game
// @Summary Delete a game
// @Description Delete a game with its stat lines and ballots (manager only)
// @Tags games
// @Security BearerAuth
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid game ID",
		})
		return
	}

	if err := h.gameService.DeleteGame(id); err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Game not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete game",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

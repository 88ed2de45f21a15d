package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetLeaderboard returns the full leaderboard
// @Summary Leaderboard
// @Description Career totals and derived ratios for every player
// @Tags stats
// @Produce json
// @Success 200 {object} models.LeaderboardResponse
// @Failure 500 {object} map[string]string
// @Router /stats/leaderboard [get]
func (h *StatsHandler) GetLeaderboard(c *gin.Context) {
	stats, err := h.statsService.GetLeaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute leaderboard",
		})
		return
	}

	c.JSON(http.StatusOK, models.LeaderboardResponse{Stats: stats})
}

// GetPlayerStats returns one player's career aggregates
// @Summary Player statistics
// @Tags stats
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.PlayerStats
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stats/player/{id} [get]
func (h *StatsHandler) GetPlayerStats(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid player ID",
		})
		return
	}

	stats, err := h.statsService.GetPlayerStats(id)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Player not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute player stats",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) topBy(c *gin.Context, metric func(models.PlayerStats) int) {
	limitStr := c.DefaultQuery("limit", "3")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid limit parameter",
		})
		return
	}

	players, err := h.statsService.GetTopPlayers(metric, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute top players",
		})
		return
	}

	c.JSON(http.StatusOK, models.TopPlayersResponse{Players: players})
}

// GetTopScorers returns the top goal scorers
// @Summary Top scorers
// @Tags stats
// @Produce json
// @Param limit query int false "Number of players (default: 3)"
// @Success 200 {object} models.TopPlayersResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stats/top-scorers [get]
func (h *StatsHandler) GetTopScorers(c *gin.Context) {
	h.topBy(c, func(p models.PlayerStats) int { return p.Goals })
}

// GetTopAssisters returns the top assist providers
// @Summary Top assisters
// @Tags stats
// @Produce json
// @Param limit query int false "Number of players (default: 3)"
// @Success 200 {object} models.TopPlayersResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stats/top-assisters [get]
func (h *StatsHandler) GetTopAssisters(c *gin.Context) {
	h.topBy(c, func(p models.PlayerStats) int { return p.Assists })
}

// GetTopMotm returns the most awarded players
// @Summary Top MOTM winners
// @Tags stats
// @Produce json
// @Param limit query int false "Number of players (default: 3)"
// @Success 200 {object} models.TopPlayersResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stats/top-motm [get]
func (h *StatsHandler) GetTopMotm(c *gin.Context) {
	h.topBy(c, func(p models.PlayerStats) int { return p.Motm })
}

// GetTopCleanSheets returns the keepers with most clean sheets
// @Summary Top clean sheets
// @Tags stats
// @Produce json
// @Param limit query int false "Number of players (default: 3)"
// @Success 200 {object} models.TopPlayersResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stats/top-clean-sheets [get]
func (h *StatsHandler) GetTopCleanSheets(c *gin.Context) {
	h.topBy(c, func(p models.PlayerStats) int { return p.CleanSheets })
}

// ExportStats returns the CSV export
// @Summary Export statistics as CSV
// @Description Three sections: team standings, player statistics, match results
// @Tags stats
// @Produce json
// @Success 200 {object} models.ExportResponse
// @Failure 500 {object} map[string]string
// @Router /stats/export [get]
func (h *StatsHandler) ExportStats(c *gin.Context) {
	csvData, err := h.statsService.ExportCSV()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to export stats",
		})
		return
	}

	c.JSON(http.StatusOK, models.ExportResponse{CSV: csvData})
}

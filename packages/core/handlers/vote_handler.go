package handlers

import (
	"errors"
	"net/http"

	"core/models"
	"core/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteService *services.VoteService
}

func NewVoteHandler(voteService *services.VoteService) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
	}
}

// voterID reads the player binding the auth middleware stamped on the
// context. Accounts without a bound player cannot vote.
func voterID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("player_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// SubmitVote submits or replaces the caller's ballot
// @Summary Submit a MOTM ballot
// @Description Submit ranked first/second/third choices for a game; a repeat submission replaces the previous ballot
// @Tags votes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param vote body models.SubmitVoteRequest true "Ballot"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /votes [post]
func (h *VoteHandler) SubmitVote(c *gin.Context) {
	voter, ok := voterID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Account has no player binding",
		})
		return
	}

	var req models.SubmitVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.voteService.SubmitVote(voter, req); err != nil {
		switch {
		case errors.Is(err, services.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDuplicateChoices):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit vote"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote submitted successfully"})
}

// GetResults returns the ranked tally for a game
// @Summary Get voting results
// @Tags votes
// @Produce json
// @Param gameId path int true "Game ID"
// @Success 200 {object} models.VoteResultsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /votes/{gameId} [get]
func (h *VoteHandler) GetResults(c *gin.Context) {
	gameID, err := parseID(c, "gameId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid game ID",
		})
		return
	}

	results, err := h.voteService.GetResults(gameID)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve results"})
		return
	}

	c.JSON(http.StatusOK, models.VoteResultsResponse{Results: results})
}

// GetAllVotes returns raw ballots plus the aggregate tally
// @Summary Get all ballots for a game
// @Tags votes
// @Produce json
// @Param gameId path int true "Game ID"
// @Success 200 {object} models.AllVotesResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /votes/{gameId}/all [get]
func (h *VoteHandler) GetAllVotes(c *gin.Context) {
	gameID, err := parseID(c, "gameId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid game ID",
		})
		return
	}

	resp, err := h.voteService.GetAllVotes(gameID)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve votes"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// FinalizeVoting locks in the MOTM winner
// @Summary Finalize MOTM voting
// @Description Compute the tally, mark the winner's stat line and flag the game finalized (manager only). Rejected if already finalized.
// @Tags votes
// @Security BearerAuth
// @Produce json
// @Param gameId path int true "Game ID"
// @Success 200 {object} models.FinalizeVotingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /votes/{gameId}/finalize [post]
func (h *VoteHandler) FinalizeVoting(c *gin.Context) {
	gameID, err := parseID(c, "gameId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid game ID",
		})
		return
	}

	resp, err := h.voteService.FinalizeVoting(gameID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNoVotes):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrVotingFinalized):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize voting"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

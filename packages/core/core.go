package core

import (
	"core/handlers"
	"core/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	PlayerHandler *handlers.PlayerHandler
	PlayerService *services.PlayerService
	GameHandler   *handlers.GameHandler
	GameService   *services.GameService
	VoteHandler   *handlers.VoteHandler
	VoteService   *services.VoteService
	StatsHandler  *handlers.StatsHandler
	StatsService  *services.StatsService
	db            *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	playerService := services.NewPlayerService(db)
	playerHandler := handlers.NewPlayerHandler(playerService)

	gameService := services.NewGameService(db)
	gameHandler := handlers.NewGameHandler(gameService)

	voteService := services.NewVoteService(db)
	voteHandler := handlers.NewVoteHandler(voteService)

	statsService := services.NewStatsService(db)
	statsHandler := handlers.NewStatsHandler(statsService)

	return &Module{
		PlayerHandler: playerHandler,
		PlayerService: playerService,
		GameHandler:   gameHandler,
		GameService:   gameService,
		VoteHandler:   voteHandler,
		VoteService:   voteService,
		StatsHandler:  statsHandler,
		StatsService:  statsService,
		db:            db,
	}
}

// SetupRoutes mounts the core routes. authRequired guards endpoints that
// need a logged-in account; managerOnly additionally checks the manager
// role (it assumes authRequired ran first, so both are chained below).
func (m *Module) SetupRoutes(r *gin.Engine, authRequired, managerOnly gin.HandlerFunc) {
	games := r.Group("/games")
	{
		games.GET("", m.GameHandler.GetGames)
		games.GET("/:id", m.GameHandler.GetGame)
		games.POST("", authRequired, managerOnly, m.GameHandler.CreateGame)
		games.PUT("/:id", authRequired, managerOnly, m.GameHandler.UpdateGame)
		games.DELETE("/:id", authRequired, managerOnly, m.GameHandler.DeleteGame)
	}

	players := r.Group("/players")
	{
		players.GET("", m.PlayerHandler.GetPlayers)
		players.GET("/:id", m.PlayerHandler.GetPlayer)
		players.POST("", authRequired, managerOnly, m.PlayerHandler.CreatePlayer)
		players.PUT("/:id", authRequired, m.PlayerHandler.UpdatePlayer)
		players.DELETE("/:id", authRequired, managerOnly, m.PlayerHandler.DeletePlayer)
	}

	votes := r.Group("/votes")
	{
		votes.POST("", authRequired, m.VoteHandler.SubmitVote)
		votes.GET("/:gameId", m.VoteHandler.GetResults)
		votes.GET("/:gameId/all", m.VoteHandler.GetAllVotes)
		votes.POST("/:gameId/finalize", authRequired, managerOnly, m.VoteHandler.FinalizeVoting)
	}

	stats := r.Group("/stats")
	{
		stats.GET("/leaderboard", m.StatsHandler.GetLeaderboard)
		stats.GET("/player/:id", m.StatsHandler.GetPlayerStats)
		stats.GET("/top-scorers", m.StatsHandler.GetTopScorers)
		stats.GET("/top-assisters", m.StatsHandler.GetTopAssisters)
		stats.GET("/top-motm", m.StatsHandler.GetTopMotm)
		stats.GET("/top-clean-sheets", m.StatsHandler.GetTopCleanSheets)
		stats.GET("/export", m.StatsHandler.ExportStats)
	}
}

package services

import (
	"testing"

	"core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A fresh :memory: database per connection; pin the pool to one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Player{},
		&models.Game{},
		&models.GameStat{},
		&models.Vote{},
	))
	return db
}

func seedPlayers(t *testing.T, db *gorm.DB, names ...string) []models.Player {
	t.Helper()

	players := make([]models.Player, 0, len(names))
	for _, name := range names {
		p := models.Player{Name: name, Role: models.RolePlayer}
		require.NoError(t, db.Create(&p).Error)
		players = append(players, p)
	}
	return players
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

// A 1-0 game: Jacques scores for Black, both keepers in goal. The Black
// keeper earns the clean sheet.
func createOneNilGame(t *testing.T, svc *GameService, players []models.Player) *models.GameResponse {
	t.Helper()

	game, err := svc.CreateGame(models.CreateGameRequest{
		Date:       "2025-06-01",
		BlackScore: 1,
		WhiteScore: 0,
		Stats: []models.PlayerStatInput{
			{PlayerID: players[0].ID, Team: models.TeamBlack, Goals: 1},
			{PlayerID: players[1].ID, Team: models.TeamBlack, IsGoalkeeper: true},
			{PlayerID: players[2].ID, Team: models.TeamWhite, IsGoalkeeper: true},
		},
	})
	require.NoError(t, err)
	return game
}

func TestCreateGame_DerivesCleanSheets(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	players := seedPlayers(t, db, "Jacques", "Marc", "Olivier")

	game := createOneNilGame(t, svc, players)

	assert.Equal(t, 1, game.BlackScore)
	assert.Equal(t, 0, game.WhiteScore)
	assert.Equal(t, models.TeamBlack, game.Winner)
	require.Len(t, game.Stats, 3)

	for _, st := range game.Stats {
		switch st.PlayerID {
		case players[1].ID:
			assert.True(t, st.CleanSheet, "Black keeper conceded nothing")
		default:
			assert.False(t, st.CleanSheet)
		}
	}
}

func TestCreateGame_ScoreMismatchRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	players := seedPlayers(t, db, "Jacques", "Marc")

	_, err := svc.CreateGame(models.CreateGameRequest{
		Date:       "2025-06-01",
		BlackScore: 3,
		WhiteScore: 0,
		Stats: []models.PlayerStatInput{
			{PlayerID: players[0].ID, Team: models.TeamBlack, Goals: 1},
			{PlayerID: players[1].ID, Team: models.TeamWhite},
		},
	})
	assert.ErrorIs(t, err, ErrScoreMismatch)

	var count int64
	require.NoError(t, db.Model(&models.Game{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "rejected game must not be persisted")
}

func TestUpdateGame_ScoreOnlyMismatchRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	players := seedPlayers(t, db, "Jacques", "Marc", "Olivier")
	game := createOneNilGame(t, svc, players)

	// New scores without new stats must still agree with the stored lines.
	_, err := svc.UpdateGame(game.ID, models.UpdateGameRequest{
		BlackScore: intPtr(0),
		WhiteScore: intPtr(5),
	})
	assert.ErrorIs(t, err, ErrScoreMismatch)

	reloaded, err := svc.GetGame(game.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.BlackScore, "rejected update must roll back")
	assert.Equal(t, 0, reloaded.WhiteScore)
	for _, st := range reloaded.Stats {
		if st.PlayerID == players[1].ID {
			assert.True(t, st.CleanSheet, "clean sheet must survive the rollback")
		}
	}
}

func TestUpdateGame_DateOnlyKeepsStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	players := seedPlayers(t, db, "Jacques", "Marc", "Olivier")
	game := createOneNilGame(t, svc, players)

	updated, err := svc.UpdateGame(game.ID, models.UpdateGameRequest{
		Date: strPtr("2025-06-08"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-08", updated.Date)
	assert.Equal(t, 1, updated.BlackScore)
	assert.Len(t, updated.Stats, 3)
}

func TestUpdateGame_ReplacesStatsAndRederivesCleanSheets(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	players := seedPlayers(t, db, "Jacques", "Marc", "Olivier")
	game := createOneNilGame(t, svc, players)

	// Correction: White equalised, so the Black keeper loses the clean sheet.
	updated, err := svc.UpdateGame(game.ID, models.UpdateGameRequest{
		BlackScore: intPtr(1),
		WhiteScore: intPtr(1),
		Stats: []models.PlayerStatInput{
			{PlayerID: players[0].ID, Team: models.TeamBlack, Goals: 1},
			{PlayerID: players[1].ID, Team: models.TeamBlack, IsGoalkeeper: true},
			{PlayerID: players[2].ID, Team: models.TeamWhite, Goals: 1, IsGoalkeeper: true},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Draw", updated.Winner)
	for _, st := range updated.Stats {
		assert.False(t, st.CleanSheet, "nobody keeps a clean sheet in a 1-1")
	}
}

func TestUpdateGame_EmptyStatsClearsRoster(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	players := seedPlayers(t, db, "Jacques", "Marc", "Olivier")
	game := createOneNilGame(t, svc, players)

	// An explicit empty stats array wipes the roster, which only a 0-0
	// scoreline can agree with.
	_, err := svc.UpdateGame(game.ID, models.UpdateGameRequest{
		Stats: []models.PlayerStatInput{},
	})
	assert.ErrorIs(t, err, ErrScoreMismatch, "1-0 cannot stand without stat lines")

	updated, err := svc.UpdateGame(game.ID, models.UpdateGameRequest{
		BlackScore: intPtr(0),
		WhiteScore: intPtr(0),
		Stats:      []models.PlayerStatInput{},
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Stats)

	var count int64
	require.NoError(t, db.Model(&models.GameStat{}).Where("game_id = ?", game.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUpdateGame_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)

	_, err := svc.UpdateGame(999, models.UpdateGameRequest{Date: strPtr("2025-06-01")})
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestDeleteGame_RemovesStatsAndVotes(t *testing.T) {
	db := newTestDB(t)
	svc := NewGameService(db)
	players := seedPlayers(t, db, "Jacques", "Marc", "Olivier")
	game := createOneNilGame(t, svc, players)

	vote := models.Vote{GameID: game.ID, VoterID: players[1].ID, FirstChoice: players[0].ID}
	require.NoError(t, db.Create(&vote).Error)

	require.NoError(t, svc.DeleteGame(game.ID))

	_, err := svc.GetGame(game.ID)
	assert.ErrorIs(t, err, ErrGameNotFound)

	var stats int64
	require.NoError(t, db.Model(&models.GameStat{}).Where("game_id = ?", game.ID).Count(&stats).Error)
	assert.Equal(t, int64(0), stats)
}

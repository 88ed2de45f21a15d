package utils

import (
	"fmt"
	"testing"
	"time"

	"core/models"

	"github.com/stretchr/testify/assert"
)

func day(offset int) time.Time {
	return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestGameResult(t *testing.T) {
	game := models.Game{BlackScore: 2, WhiteScore: 1}

	assert.Equal(t, "W", GameResult(models.TeamBlack, game))
	assert.Equal(t, "L", GameResult(models.TeamWhite, game))

	draw := models.Game{BlackScore: 1, WhiteScore: 1}
	assert.Equal(t, "D", GameResult(models.TeamBlack, draw))
	assert.Equal(t, "D", GameResult(models.TeamWhite, draw))
}

func TestBuildLeaderboard_ResultsSumToGamesPlayed(t *testing.T) {
	players := []models.Player{{ID: 1, Name: "Ash"}, {ID: 2, Name: "Del"}}
	games := []models.Game{
		{ID: 1, GameDate: day(0), BlackScore: 2, WhiteScore: 0},
		{ID: 2, GameDate: day(7), BlackScore: 1, WhiteScore: 1},
		{ID: 3, GameDate: day(14), BlackScore: 0, WhiteScore: 3},
	}
	stats := []models.GameStat{
		{GameID: 1, PlayerID: 1, Team: models.TeamBlack, Goals: 2},
		{GameID: 2, PlayerID: 1, Team: models.TeamBlack},
		{GameID: 3, PlayerID: 1, Team: models.TeamWhite, Goals: 1},
		{GameID: 1, PlayerID: 2, Team: models.TeamWhite},
	}

	rows := BuildLeaderboard(players, games, stats)

	for _, row := range rows {
		assert.Equal(t, row.GamesPlayed, row.Wins+row.Draws+row.Losses,
			"player %d results must account for every game", row.PlayerID)
	}
}

func TestBuildLeaderboard_PointsAndRatios(t *testing.T) {
	// 10 games: 6 wins, 2 draws, 2 losses = 20 points, 2.00 per game, 60%.
	players := []models.Player{{ID: 1, Name: "Jimmy"}}
	var games []models.Game
	var stats []models.GameStat

	results := []struct{ black, white int }{
		{1, 0}, {2, 1}, {3, 0}, {1, 0}, {2, 0}, {4, 2}, // wins
		{1, 1}, {0, 0}, // draws
		{0, 1}, {1, 3}, // losses
	}
	for i, r := range results {
		id := uint(i + 1)
		games = append(games, models.Game{ID: id, GameDate: day(i), BlackScore: r.black, WhiteScore: r.white})
		stats = append(stats, models.GameStat{GameID: id, PlayerID: 1, Team: models.TeamBlack})
	}

	rows := BuildLeaderboard(players, games, stats)

	assert.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, 10, row.GamesPlayed)
	assert.Equal(t, 6, row.Wins)
	assert.Equal(t, 2, row.Draws)
	assert.Equal(t, 2, row.Losses)
	assert.Equal(t, 20, row.TotalPoints)
	assert.Equal(t, 2.00, row.PointsPerGame)
	assert.Equal(t, 60, row.WinPercentage)
}

func TestBuildLeaderboard_Last5MostRecentFirst(t *testing.T) {
	players := []models.Player{{ID: 1, Name: "Benny"}}
	var games []models.Game
	var stats []models.GameStat

	// Seven games, alternating wins and losses, oldest first.
	for i := 0; i < 7; i++ {
		id := uint(i + 1)
		black, white := 1, 0
		if i%2 == 1 {
			black, white = 0, 1
		}
		games = append(games, models.Game{ID: id, GameDate: day(i), BlackScore: black, WhiteScore: white})
		stats = append(stats, models.GameStat{GameID: id, PlayerID: 1, Team: models.TeamBlack})
	}

	rows := BuildLeaderboard(players, games, stats)

	// Game 7 (win) is most recent, then 6 (loss), 5, 4, 3.
	assert.Equal(t, []string{"W", "L", "W", "L", "W"}, rows[0].Last5)
}

func TestBuildLeaderboard_PlayerWithoutStatsGetsZeroedRow(t *testing.T) {
	players := []models.Player{{ID: 1, Name: "Kov"}, {ID: 2, Name: "Fents"}}
	games := []models.Game{{ID: 1, GameDate: day(0), BlackScore: 1, WhiteScore: 0}}
	stats := []models.GameStat{{GameID: 1, PlayerID: 1, Team: models.TeamBlack, Goals: 1}}

	rows := BuildLeaderboard(players, games, stats)

	assert.Len(t, rows, 2)
	var bench models.PlayerStats
	for _, r := range rows {
		if r.PlayerID == 2 {
			bench = r
		}
	}
	assert.Equal(t, 0, bench.GamesPlayed)
	assert.Equal(t, 0.0, bench.PointsPerGame)
	assert.Empty(t, bench.Last5)
}

func TestBuildLeaderboard_OrderedByGoals(t *testing.T) {
	players := []models.Player{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}
	games := []models.Game{{ID: 1, GameDate: day(0), BlackScore: 5, WhiteScore: 0}}
	stats := []models.GameStat{
		{GameID: 1, PlayerID: 1, Team: models.TeamBlack, Goals: 1},
		{GameID: 1, PlayerID: 2, Team: models.TeamBlack, Goals: 4},
		{GameID: 1, PlayerID: 3, Team: models.TeamWhite},
	}

	rows := BuildLeaderboard(players, games, stats)

	assert.Equal(t, uint(2), rows[0].PlayerID)
	assert.Equal(t, uint(1), rows[1].PlayerID)
	assert.Equal(t, uint(3), rows[2].PlayerID)
}

func TestTopPlayers_FiltersZeroAndLimits(t *testing.T) {
	rows := []models.PlayerStats{
		{PlayerID: 1, PlayerName: "A", Goals: 5, GamesPlayed: 4},
		{PlayerID: 2, PlayerName: "B", Goals: 0, GamesPlayed: 4},
		{PlayerID: 3, PlayerName: "C", Goals: 8, GamesPlayed: 5},
		{PlayerID: 4, PlayerName: "D", Goals: 2, GamesPlayed: 3},
		{PlayerID: 5, PlayerName: "E", Goals: 1, GamesPlayed: 1},
	}

	top := TopPlayers(rows, func(p models.PlayerStats) int { return p.Goals }, 3)

	assert.Len(t, top, 3)
	assert.Equal(t, uint(3), top[0].PlayerID)
	assert.Equal(t, 8, top[0].Value)
	assert.Equal(t, uint(1), top[1].PlayerID)
	assert.Equal(t, uint(4), top[2].PlayerID)
	for _, p := range top {
		assert.NotEqual(t, uint(2), p.PlayerID, "zero-metric players are filtered out")
	}
}

func TestTopPlayers_TieBreaksByPlayerID(t *testing.T) {
	rows := []models.PlayerStats{
		{PlayerID: 9, Goals: 3},
		{PlayerID: 4, Goals: 3},
	}

	top := TopPlayers(rows, func(p models.PlayerStats) int { return p.Goals }, 0)

	assert.Equal(t, uint(4), top[0].PlayerID)
	assert.Equal(t, uint(9), top[1].PlayerID)
}

func TestBuildTeamStandings(t *testing.T) {
	games := []models.Game{
		{ID: 1, BlackScore: 2, WhiteScore: 0},
		{ID: 2, BlackScore: 1, WhiteScore: 1},
		{ID: 3, BlackScore: 0, WhiteScore: 3},
	}

	standings := BuildTeamStandings(games)

	assert.Len(t, standings, 2)
	black, white := standings[0], standings[1]

	assert.Equal(t, models.TeamBlack, black.Team)
	assert.Equal(t, 3, black.GamesPlayed)
	assert.Equal(t, 1, black.Wins)
	assert.Equal(t, 1, black.Draws)
	assert.Equal(t, 1, black.Losses)
	assert.Equal(t, 3, black.GoalsFor)
	assert.Equal(t, 4, black.GoalsAgainst)
	assert.Equal(t, -1, black.GoalDifference)
	assert.Equal(t, 4, black.Points)

	assert.Equal(t, 4, white.Points)
	assert.Equal(t, 1, white.GoalDifference)

	// Mirror invariant: one team's goals for are the other's against.
	assert.Equal(t, black.GoalsFor, white.GoalsAgainst)
	assert.Equal(t, white.GoalsFor, black.GoalsAgainst)
}

func TestBuildTeamStandings_NoGames(t *testing.T) {
	standings := BuildTeamStandings(nil)

	for _, s := range standings {
		assert.Equal(t, 0, s.GamesPlayed, fmt.Sprintf("%s should be zeroed", s.Team))
		assert.Equal(t, 0, s.Points)
	}
}

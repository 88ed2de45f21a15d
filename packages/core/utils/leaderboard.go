package utils

import (
	"math"
	"sort"

	"core/models"
)

// League points: 3 for a win, 1 for a draw.
const (
	WinPoints  = 3
	DrawPoints = 1
)

// GameResult returns "W", "D" or "L" for a player on the given team.
func GameResult(team string, game models.Game) string {
	own, opp := game.BlackScore, game.WhiteScore
	if team == models.TeamWhite {
		own, opp = opp, own
	}
	switch {
	case own > opp:
		return "W"
	case own < opp:
		return "L"
	default:
		return "D"
	}
}

// BuildLeaderboard computes every player's career totals and derived
// ratios from the full game history. Rows are ordered by goals descending
// then games played descending; players without a single stat line still
// get a zeroed row.
func BuildLeaderboard(players []models.Player, games []models.Game, stats []models.GameStat) []models.PlayerStats {
	gamesByID := make(map[uint]models.Game, len(games))
	for _, g := range games {
		gamesByID[g.ID] = g
	}

	rows := make(map[uint]*models.PlayerStats, len(players))
	for _, p := range players {
		rows[p.ID] = &models.PlayerStats{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Last5:      []string{},
		}
	}

	// Most recent games first; game id breaks date ties.
	history := make([]models.GameStat, len(stats))
	copy(history, stats)
	sort.Slice(history, func(i, j int) bool {
		gi, gj := gamesByID[history[i].GameID], gamesByID[history[j].GameID]
		if !gi.GameDate.Equal(gj.GameDate) {
			return gi.GameDate.After(gj.GameDate)
		}
		return gi.ID > gj.ID
	})

	for _, st := range history {
		row, ok := rows[st.PlayerID]
		if !ok {
			continue
		}
		game, ok := gamesByID[st.GameID]
		if !ok {
			continue
		}

		row.GamesPlayed++
		row.Goals += st.Goals
		row.Assists += st.Assists
		if st.ManOfMatch {
			row.Motm++
		}
		if st.CleanSheet {
			row.CleanSheets++
		}

		result := GameResult(st.Team, game)
		switch result {
		case "W":
			row.Wins++
		case "D":
			row.Draws++
		default:
			row.Losses++
		}
		if len(row.Last5) < 5 {
			row.Last5 = append(row.Last5, result)
		}
	}

	out := make([]models.PlayerStats, 0, len(rows))
	for _, row := range rows {
		row.TotalPoints = WinPoints*row.Wins + DrawPoints*row.Draws
		if row.GamesPlayed > 0 {
			row.WinPercentage = int(math.Round(float64(row.Wins) / float64(row.GamesPlayed) * 100))
			row.PointsPerGame = math.Round(float64(row.TotalPoints)/float64(row.GamesPlayed)*100) / 100
		}
		out = append(out, *row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		if out[i].GamesPlayed != out[j].GamesPlayed {
			return out[i].GamesPlayed > out[j].GamesPlayed
		}
		return out[i].PlayerID < out[j].PlayerID
	})

	return out
}

// TopPlayers filters leaderboard rows to those with a positive metric,
// ranks them by it descending and truncates to limit.
func TopPlayers(rows []models.PlayerStats, metric func(models.PlayerStats) int, limit int) []models.TopPlayer {
	filtered := make([]models.PlayerStats, 0, len(rows))
	for _, row := range rows {
		if metric(row) > 0 {
			filtered = append(filtered, row)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if metric(filtered[i]) != metric(filtered[j]) {
			return metric(filtered[i]) > metric(filtered[j])
		}
		return filtered[i].PlayerID < filtered[j].PlayerID
	})

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	top := make([]models.TopPlayer, 0, len(filtered))
	for _, row := range filtered {
		top = append(top, models.TopPlayer{
			PlayerID:    row.PlayerID,
			PlayerName:  row.PlayerName,
			Value:       metric(row),
			GamesPlayed: row.GamesPlayed,
		})
	}
	return top
}

// BuildTeamStandings aggregates every game from each team's point of view.
func BuildTeamStandings(games []models.Game) []models.TeamStanding {
	standings := []models.TeamStanding{
		{Team: models.TeamBlack},
		{Team: models.TeamWhite},
	}
	black, white := &standings[0], &standings[1]

	for _, g := range games {
		black.GoalsFor += g.BlackScore
		black.GoalsAgainst += g.WhiteScore
		white.GoalsFor += g.WhiteScore
		white.GoalsAgainst += g.BlackScore

		switch {
		case g.BlackScore > g.WhiteScore:
			black.Wins++
			white.Losses++
		case g.WhiteScore > g.BlackScore:
			white.Wins++
			black.Losses++
		default:
			black.Draws++
			white.Draws++
		}
	}

	for i := range standings {
		s := &standings[i]
		s.GamesPlayed = s.Wins + s.Draws + s.Losses
		s.GoalDifference = s.GoalsFor - s.GoalsAgainst
		s.Points = WinPoints*s.Wins + DrawPoints*s.Draws
	}
	return standings
}

package utils

import (
	"encoding/csv"
	"fmt"
	"strings"

	"core/models"
)

// BuildStatsCSV renders the three-section export: TEAM STANDINGS,
// PLAYER STATISTICS and MATCH RESULTS, separated by blank lines. Fields
// go through encoding/csv so commas and quotes in player names stay
// intact.
func BuildStatsCSV(standings []models.TeamStanding, players []models.PlayerStats, games []models.GameSummary) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	writeRow := func(fields ...string) {
		// strings.Builder never errors
		_ = w.Write(fields)
	}

	writeRow("TEAM STANDINGS")
	writeRow("Team", "Games Played", "Wins", "Draws", "Losses", "Goals For", "Goals Against", "Goal Difference", "Points")
	for _, s := range standings {
		writeRow(s.Team,
			itoa(s.GamesPlayed), itoa(s.Wins), itoa(s.Draws), itoa(s.Losses),
			itoa(s.GoalsFor), itoa(s.GoalsAgainst), itoa(s.GoalDifference), itoa(s.Points))
	}
	w.Flush()
	sb.WriteString("\n")

	writeRow("PLAYER STATISTICS")
	writeRow("Player Name", "Games Played", "Wins", "Draws", "Losses", "Total Points", "Points Per Game", "Win %", "Goals", "Assists", "MOTM", "Clean Sheets")
	for _, p := range players {
		writeRow(p.PlayerName,
			itoa(p.GamesPlayed), itoa(p.Wins), itoa(p.Draws), itoa(p.Losses),
			itoa(p.TotalPoints), fmt.Sprintf("%.2f", p.PointsPerGame), itoa(p.WinPercentage),
			itoa(p.Goals), itoa(p.Assists), itoa(p.Motm), itoa(p.CleanSheets))
	}
	w.Flush()
	sb.WriteString("\n")

	writeRow("MATCH RESULTS")
	writeRow("Game ID", "Date", "Black Score", "White Score", "Winner", "Man of the Match")
	for _, g := range games {
		motm := g.MotmName
		if motm == "" {
			motm = "N/A"
		}
		writeRow(fmt.Sprintf("%d", g.GameID), g.Date, itoa(g.BlackScore), itoa(g.WhiteScore), g.Winner, motm)
	}
	w.Flush()

	return sb.String()
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}

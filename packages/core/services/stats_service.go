package services

import (
	"sort"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

// Aggregates recompute from the full history on every call. Fine at
// this data scale; a summary table would be the next step if it grows.
func (s *StatsService) loadHistory() ([]models.Player, []models.Game, []models.GameStat, error) {
	var players []models.Player
	if err := s.db.Find(&players).Error; err != nil {
		return nil, nil, nil, err
	}
	var games []models.Game
	if err := s.db.Find(&games).Error; err != nil {
		return nil, nil, nil, err
	}
	var stats []models.GameStat
	if err := s.db.Find(&stats).Error; err != nil {
		return nil, nil, nil, err
	}
	return players, games, stats, nil
}

func (s *StatsService) GetLeaderboard() ([]models.PlayerStats, error) {
	players, games, stats, err := s.loadHistory()
	if err != nil {
		return nil, err
	}
	return utils.BuildLeaderboard(players, games, stats), nil
}

func (s *StatsService) GetPlayerStats(playerID uint) (*models.PlayerStats, error) {
	var player models.Player
	if err := s.db.First(&player, playerID).Error; err != nil {
		return nil, ErrPlayerNotFound
	}

	rows, err := s.GetLeaderboard()
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].PlayerID == playerID {
			return &rows[i], nil
		}
	}
	return nil, ErrPlayerNotFound
}

func (s *StatsService) GetTopPlayers(metric func(models.PlayerStats) int, limit int) ([]models.TopPlayer, error) {
	rows, err := s.GetLeaderboard()
	if err != nil {
		return nil, err
	}
	return utils.TopPlayers(rows, metric, limit), nil
}

// ExportCSV renders the full three-section stats export.
func (s *StatsService) ExportCSV() (string, error) {
	players, games, stats, err := s.loadHistory()
	if err != nil {
		return "", err
	}

	leaderboard := utils.BuildLeaderboard(players, games, stats)
	standings := utils.BuildTeamStandings(games)

	names := make(map[uint]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}
	motmByGame := make(map[uint]string)
	for _, st := range stats {
		if st.ManOfMatch {
			motmByGame[st.GameID] = names[st.PlayerID]
		}
	}

	sort.Slice(games, func(i, j int) bool {
		if !games[i].GameDate.Equal(games[j].GameDate) {
			return games[i].GameDate.After(games[j].GameDate)
		}
		return games[i].ID > games[j].ID
	})

	summaries := make([]models.GameSummary, 0, len(games))
	for _, g := range games {
		summaries = append(summaries, models.GameSummary{
			GameID:     g.ID,
			Date:       g.GameDate.Format(dateLayout),
			BlackScore: g.BlackScore,
			WhiteScore: g.WhiteScore,
			Winner:     g.Winner(),
			MotmName:   motmByGame[g.ID],
		})
	}

	return utils.BuildStatsCSV(standings, leaderboard, summaries), nil
}

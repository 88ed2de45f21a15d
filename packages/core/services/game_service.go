package services

import (
	"errors"
	"sort"
	"time"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{
		db: db,
	}
}

func (s *GameService) getGame(db *gorm.DB, id uint) (*models.Game, error) {
	var game models.Game
	if err := db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

// buildStatLines validates the submitted stat inputs against the
// submitted scores and returns the rows to persist. Clean sheets are
// re-derived server side, so a stored game is always self-consistent.
func buildStatLines(gameID uint, blackScore, whiteScore int, inputs []models.PlayerStatInput) ([]models.GameStat, error) {
	seen := make(map[uint]bool, len(inputs))
	stats := make([]models.GameStat, 0, len(inputs))

	for _, in := range inputs {
		if seen[in.PlayerID] {
			return nil, ErrDuplicatePlayer
		}
		seen[in.PlayerID] = true

		stats = append(stats, models.GameStat{
			GameID:       gameID,
			PlayerID:     in.PlayerID,
			Team:         in.Team,
			Goals:        in.Goals,
			Assists:      in.Assists,
			OwnGoals:     in.OwnGoals,
			IsGoalkeeper: in.IsGoalkeeper,
			IsCaptain:    in.IsCaptain,
			ManOfMatch:   in.ManOfMatch,
		})
	}

	scores := utils.ComputeScores(stats)
	if scores.Black != blackScore || scores.White != whiteScore {
		return nil, ErrScoreMismatch
	}
	utils.DeriveCleanSheets(stats, scores)

	return stats, nil
}

func (s *GameService) CreateGame(req models.CreateGameRequest) (*models.GameResponse, error) {
	gameDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	game := models.Game{
		GameDate:   gameDate,
		BlackScore: req.BlackScore,
		WhiteScore: req.WhiteScore,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&game).Error; err != nil {
			return err
		}

		stats, err := buildStatLines(game.ID, req.BlackScore, req.WhiteScore, req.Stats)
		if err != nil {
			return err
		}
		if len(stats) > 0 {
			if err := tx.Create(&stats).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetGame(game.ID)
}

func (s *GameService) UpdateGame(id uint, req models.UpdateGameRequest) (*models.GameResponse, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		game, err := s.getGame(tx, id)
		if err != nil {
			return err
		}

		if req.Date != nil {
			gameDate, err := time.Parse(dateLayout, *req.Date)
			if err != nil {
				return ErrInvalidDate
			}
			game.GameDate = gameDate
		}
		if req.BlackScore != nil {
			game.BlackScore = *req.BlackScore
		}
		if req.WhiteScore != nil {
			game.WhiteScore = *req.WhiteScore
		}

		if err := tx.Save(game).Error; err != nil {
			return err
		}

		// Stat replacement is all-or-nothing: drop the old lines and
		// reinsert inside the same transaction. An explicit empty stats
		// array clears the roster, which forces the scores to 0-0.
		if req.Stats != nil {
			stats, err := buildStatLines(id, game.BlackScore, game.WhiteScore, req.Stats)
			if err != nil {
				return err
			}
			if err := tx.Where("game_id = ?", id).Delete(&models.GameStat{}).Error; err != nil {
				return err
			}
			if len(stats) > 0 {
				if err := tx.Create(&stats).Error; err != nil {
					return err
				}
			}
			return nil
		}

		// No stats submitted: the new scores still have to agree with the
		// stored stat lines, and clean sheets are re-derived against them.
		var existing []models.GameStat
		if err := tx.Where("game_id = ?", id).Find(&existing).Error; err != nil {
			return err
		}
		scores := utils.ComputeScores(existing)
		if scores.Black != game.BlackScore || scores.White != game.WhiteScore {
			return ErrScoreMismatch
		}
		before := make([]bool, len(existing))
		for i := range existing {
			before[i] = existing[i].CleanSheet
		}
		utils.DeriveCleanSheets(existing, scores)
		for i := range existing {
			if existing[i].CleanSheet == before[i] {
				continue
			}
			if err := tx.Model(&existing[i]).Update("clean_sheet", existing[i].CleanSheet).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetGame(id)
}

func (s *GameService) GetGame(id uint) (*models.GameResponse, error) {
	game, err := s.getGame(s.db, id)
	if err != nil {
		return nil, err
	}

	var stats []models.GameStat
	if err := s.db.Where("game_id = ?", id).Preload("Player").Find(&stats).Error; err != nil {
		return nil, err
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Team != stats[j].Team {
			return stats[i].Team < stats[j].Team
		}
		return stats[i].Player.Name < stats[j].Player.Name
	})

	details := make([]models.PlayerStatDetail, 0, len(stats))
	for _, st := range stats {
		details = append(details, models.PlayerStatDetail{
			PlayerID:     st.PlayerID,
			PlayerName:   st.Player.Name,
			Team:         st.Team,
			Goals:        st.Goals,
			Assists:      st.Assists,
			OwnGoals:     st.OwnGoals,
			IsGoalkeeper: st.IsGoalkeeper,
			IsCaptain:    st.IsCaptain,
			CleanSheet:   st.CleanSheet,
			ManOfMatch:   st.ManOfMatch,
		})
	}

	return &models.GameResponse{
		ID:            game.ID,
		Date:          game.GameDate.Format(dateLayout),
		BlackScore:    game.BlackScore,
		WhiteScore:    game.WhiteScore,
		Winner:        game.Winner(),
		MotmFinalized: game.MotmFinalized,
		Stats:         details,
	}, nil
}

// GetGames lists every game newest first, with the finalized MOTM name
// and the per-game scorer/assister summaries.
func (s *GameService) GetGames() ([]models.GameListItem, error) {
	var games []models.Game
	if err := s.db.Order("game_date DESC, id DESC").
		Preload("Stats").
		Preload("Stats.Player").
		Find(&games).Error; err != nil {
		return nil, err
	}

	items := make([]models.GameListItem, 0, len(games))
	for _, g := range games {
		item := models.GameListItem{
			ID:            g.ID,
			Date:          g.GameDate.Format(dateLayout),
			BlackScore:    g.BlackScore,
			WhiteScore:    g.WhiteScore,
			Winner:        g.Winner(),
			MotmFinalized: g.MotmFinalized,
			Scorers:       []models.ScorerEntry{},
			Assisters:     []models.AssisterEntry{},
		}
		for _, st := range g.Stats {
			if st.ManOfMatch {
				name := st.Player.Name
				item.MotmPlayerName = &name
			}
			if st.Goals > 0 {
				item.Scorers = append(item.Scorers, models.ScorerEntry{Name: st.Player.Name, Goals: st.Goals})
			}
			if st.Assists > 0 {
				item.Assisters = append(item.Assisters, models.AssisterEntry{Name: st.Player.Name, Assists: st.Assists})
			}
		}
		items = append(items, item)
	}

	return items, nil
}

// DeleteGame removes a game with its stat lines and ballots.
func (s *GameService) DeleteGame(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		game, err := s.getGame(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.GameStat{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Delete(game).Error
	})
}

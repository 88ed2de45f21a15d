package fixtures

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	authModels "auth/models"
	authUtils "auth/utils"
	"core/models"
	coreUtils "core/utils"

	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateTestData creates a season's worth of sample data: accounts,
// players, games with per-player stats and votes on recent games.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	players, err := f.generateUsersAndPlayers()
	if err != nil {
		return fmt.Errorf("failed to generate users and players: %w", err)
	}

	games, err := f.generateGames(players)
	if err != nil {
		return fmt.Errorf("failed to generate games: %w", err)
	}

	if err := f.generateVotes(players, games); err != nil {
		return fmt.Errorf("failed to generate votes: %w", err)
	}

	log.Println("Fixtures generated successfully!")
	log.Printf("Created %d players and %d games", len(players), len(games))
	return nil
}

func (f *Fixtures) generateUsersAndPlayers() ([]models.Player, error) {
	names := []struct {
		name     string
		nickname string
		role     string
	}{
		{"Oliver Hartley", "Olly", models.RoleManager},
		{"James Whitfield", "Jimmy", models.RolePlayer},
		{"Daniel Okafor", "Dan", models.RolePlayer},
		{"Marcus Reid", "Sparky", models.RolePlayer},
		{"Tom Ashworth", "Ash", models.RolePlayer},
		{"Ben Caldwell", "Benny", models.RolePlayer},
		{"Ryan Delacroix", "Del", models.RolePlayer},
		{"Sam Pritchard", "Pritch", models.RolePlayer},
		{"Luke Fenton", "Fents", models.RolePlayer},
		{"Adam Kowalski", "Kov", models.RolePlayer},
		{"Joe Marchetti", "Marche", models.RolePlayer},
		{"Chris Ngata", "Tane", models.RolePlayer},
	}

	var players []models.Player

	for i, n := range names {
		hashedPassword, err := authUtils.HashPassword("password123")
		if err != nil {
			return nil, err
		}

		username := fmt.Sprintf("player%d", i+1)
		if n.role == models.RoleManager {
			username = "manager"
		}

		user := authModels.User{
			Username: username,
			Password: hashedPassword,
			Role:     n.role,
			Enabled:  true,
		}
		if err := f.db.Create(&user).Error; err != nil {
			return nil, err
		}

		nickname := n.nickname
		player := models.Player{
			Name:     n.name,
			Nickname: &nickname,
			UserID:   &user.ID,
			Role:     n.role,
		}
		if err := f.db.Create(&player).Error; err != nil {
			return nil, err
		}

		players = append(players, player)
		log.Printf("Created user %s -> player %s (ID: %d)", username, n.name, player.ID)
	}

	return players, nil
}

func (f *Fixtures) generateGames(players []models.Player) ([]models.Game, error) {
	var games []models.Game

	now := time.Now()

	// 8 games over the last 10 weeks, most recent last
	for i := 0; i < 8; i++ {
		gameDate := now.AddDate(0, 0, -7*(8-i))

		// Shuffle players and split into two teams of 5 or 6
		shuffled := make([]models.Player, len(players))
		copy(shuffled, players)
		rand.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] }) // #nosec G404

		teamSize := 5 + rand.Intn(2) // #nosec G404
		if teamSize*2 > len(shuffled) {
			teamSize = len(shuffled) / 2
		}

		var stats []models.GameStat
		for j := 0; j < teamSize*2; j++ {
			team := models.TeamBlack
			if j >= teamSize {
				team = models.TeamWhite
			}

			stat := models.GameStat{
				PlayerID:     shuffled[j].ID,
				Team:         team,
				Goals:        weightedCount(3),
				Assists:      weightedCount(3),
				OwnGoals:     0,
				IsGoalkeeper: j == 0 || j == teamSize,
				IsCaptain:    j == 1 || j == teamSize+1,
			}
			if rand.Intn(20) == 0 { // #nosec G404
				stat.OwnGoals = 1
			}
			stats = append(stats, stat)
		}

		scores := coreUtils.ComputeScores(stats)
		coreUtils.DeriveCleanSheets(stats, scores)

		game := models.Game{
			GameDate:   gameDate,
			BlackScore: scores.Black,
			WhiteScore: scores.White,
		}

		err := f.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&game).Error; err != nil {
				return err
			}
			for k := range stats {
				stats[k].GameID = game.ID
			}
			return tx.Create(&stats).Error
		})
		if err != nil {
			return nil, err
		}

		games = append(games, game)
		log.Printf("Created game on %s: Black %d - %d White (%d players)",
			gameDate.Format("2006-01-02"), scores.Black, scores.White, len(stats))
	}

	return games, nil
}

func (f *Fixtures) generateVotes(players []models.Player, games []models.Game) error {
	// Votes on all but the most recent game; older games get finalized.
	for i, game := range games {
		if i == len(games)-1 {
			continue
		}

		var stats []models.GameStat
		if err := f.db.Where("game_id = ?", game.ID).Find(&stats).Error; err != nil {
			return err
		}
		if len(stats) < 3 {
			continue
		}

		for _, stat := range stats {
			// Not everyone votes
			if rand.Intn(4) == 0 { // #nosec G404
				continue
			}

			choices := pickChoices(stats, stat.PlayerID)
			if choices == nil {
				continue
			}

			vote := models.Vote{
				GameID:       game.ID,
				VoterID:      stat.PlayerID,
				FirstChoice:  choices[0],
				SecondChoice: &choices[1],
				ThirdChoice:  &choices[2],
			}
			if err := f.db.Create(&vote).Error; err != nil {
				return err
			}
		}

		// Finalize everything but the two most recent voted games
		if i < len(games)-3 {
			var votes []models.Vote
			if err := f.db.Where("game_id = ?", game.ID).Find(&votes).Error; err != nil {
				return err
			}
			if len(votes) == 0 {
				continue
			}

			tally := coreUtils.TallyVotes(votes)
			winnerID := tally[0].PlayerID

			err := f.db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Model(&models.GameStat{}).
					Where("game_id = ?", game.ID).
					Update("man_of_match", gorm.Expr("player_id = ?", winnerID)).Error; err != nil {
					return err
				}
				return tx.Model(&models.Game{}).
					Where("id = ?", game.ID).
					Update("motm_finalized", true).Error
			})
			if err != nil {
				return err
			}
			log.Printf("Finalized voting for game %d, man of the match: player %d", game.ID, winnerID)
		}
	}

	return nil
}

// pickChoices returns three distinct player ids from the game's
// participants, excluding the voter.
func pickChoices(stats []models.GameStat, voterID uint) []uint {
	var candidates []uint
	for _, s := range stats {
		if s.PlayerID != voterID {
			candidates = append(candidates, s.PlayerID)
		}
	}
	if len(candidates) < 3 {
		return nil
	}
	rand.Shuffle(len(candidates), func(a, b int) { candidates[a], candidates[b] = candidates[b], candidates[a] }) // #nosec G404
	return candidates[:3]
}

// weightedCount returns a small count skewed towards zero.
func weightedCount(max int) int {
	roll := rand.Float32() // #nosec G404
	switch {
	case roll < 0.55:
		return 0
	case roll < 0.85:
		return 1
	default:
		return 1 + rand.Intn(max) // #nosec G404
	}
}

// ClearAllData removes all fixture data and resets sequences.
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	tables := []interface{}{
		&models.Vote{},
		&models.GameStat{},
		&models.Game{},
		&models.Player{},
		&authModels.RefreshToken{},
		&authModels.User{},
	}

	for _, table := range tables {
		if err := f.db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}

	sequences := []string{
		"ALTER SEQUENCE users_id_seq RESTART WITH 1",
		"ALTER SEQUENCE refresh_tokens_id_seq RESTART WITH 1",
		"ALTER SEQUENCE players_id_seq RESTART WITH 1",
		"ALTER SEQUENCE games_id_seq RESTART WITH 1",
		"ALTER SEQUENCE game_stats_id_seq RESTART WITH 1",
		"ALTER SEQUENCE votes_id_seq RESTART WITH 1",
	}

	for _, seq := range sequences {
		f.db.Exec(seq)
	}

	log.Println("All fixture data cleared!")
	return nil
}

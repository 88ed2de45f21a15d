package services

import (
	"errors"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

type VoteService struct {
	db *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{
		db: db,
	}
}

func (s *VoteService) gameExists(db *gorm.DB, gameID uint) error {
	var game models.Game
	if err := db.Select("id").First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return err
	}
	return nil
}

// SubmitVote records or replaces the voter's ballot for a game. A voter
// has at most one active ballot per game.
func (s *VoteService) SubmitVote(voterID uint, req models.SubmitVoteRequest) error {
	if err := s.gameExists(s.db, req.GameID); err != nil {
		return err
	}

	choices := map[uint]bool{req.FirstChoice: true}
	for _, c := range []*uint{req.SecondChoice, req.ThirdChoice} {
		if c == nil {
			continue
		}
		if choices[*c] {
			return ErrDuplicateChoices
		}
		choices[*c] = true
	}

	var existing models.Vote
	err := s.db.Where("game_id = ? AND voter_id = ?", req.GameID, voterID).First(&existing).Error
	if err == nil {
		existing.FirstChoice = req.FirstChoice
		existing.SecondChoice = req.SecondChoice
		existing.ThirdChoice = req.ThirdChoice
		return s.db.Save(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	vote := models.Vote{
		GameID:       req.GameID,
		VoterID:      voterID,
		FirstChoice:  req.FirstChoice,
		SecondChoice: req.SecondChoice,
		ThirdChoice:  req.ThirdChoice,
	}
	return s.db.Create(&vote).Error
}

func (s *VoteService) loadVotes(db *gorm.DB, gameID uint) ([]models.Vote, error) {
	var votes []models.Vote
	if err := db.Where("game_id = ?", gameID).Order("created_at DESC").Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

func (s *VoteService) tallyWithNames(votes []models.Vote) ([]models.VoteResult, error) {
	tallies := utils.TallyVotes(votes)

	ids := make([]uint, 0, len(tallies))
	for _, t := range tallies {
		ids = append(ids, t.PlayerID)
	}

	names := make(map[uint]string, len(ids))
	if len(ids) > 0 {
		var players []models.Player
		if err := s.db.Where("id IN ?", ids).Find(&players).Error; err != nil {
			return nil, err
		}
		for _, p := range players {
			names[p.ID] = p.Name
		}
	}

	results := make([]models.VoteResult, 0, len(tallies))
	for _, t := range tallies {
		results = append(results, models.VoteResult{
			PlayerID:          t.PlayerID,
			PlayerName:        names[t.PlayerID],
			FirstChoiceVotes:  t.FirstChoiceVotes,
			SecondChoiceVotes: t.SecondChoiceVotes,
			ThirdChoiceVotes:  t.ThirdChoiceVotes,
			TotalPoints:       t.TotalPoints,
		})
	}
	return results, nil
}

// GetResults returns the ranked tally for a game.
func (s *VoteService) GetResults(gameID uint) ([]models.VoteResult, error) {
	if err := s.gameExists(s.db, gameID); err != nil {
		return nil, err
	}
	votes, err := s.loadVotes(s.db, gameID)
	if err != nil {
		return nil, err
	}
	return s.tallyWithNames(votes)
}

// GetAllVotes returns the raw ballots (choices resolved to names) plus
// the aggregated tally.
func (s *VoteService) GetAllVotes(gameID uint) (*models.AllVotesResponse, error) {
	if err := s.gameExists(s.db, gameID); err != nil {
		return nil, err
	}

	var votes []models.Vote
	if err := s.db.Where("game_id = ?", gameID).Order("created_at DESC").Find(&votes).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(votes)*3)
	for _, v := range votes {
		ids = append(ids, v.FirstChoice)
		if v.SecondChoice != nil {
			ids = append(ids, *v.SecondChoice)
		}
		if v.ThirdChoice != nil {
			ids = append(ids, *v.ThirdChoice)
		}
	}

	names := make(map[uint]string)
	if len(ids) > 0 {
		var players []models.Player
		if err := s.db.Where("id IN ?", ids).Find(&players).Error; err != nil {
			return nil, err
		}
		for _, p := range players {
			names[p.ID] = p.Name
		}
	}

	nameOf := func(id *uint) *string {
		if id == nil {
			return nil
		}
		n := names[*id]
		return &n
	}

	details := make([]models.VoteDetail, 0, len(votes))
	for _, v := range votes {
		details = append(details, models.VoteDetail{
			VoteID:       v.ID,
			FirstChoice:  names[v.FirstChoice],
			SecondChoice: nameOf(v.SecondChoice),
			ThirdChoice:  nameOf(v.ThirdChoice),
			CreatedAt:    v.CreatedAt,
		})
	}

	aggregate, err := s.tallyWithNames(votes)
	if err != nil {
		return nil, err
	}

	return &models.AllVotesResponse{Votes: details, Aggregate: aggregate}, nil
}

// FinalizeVoting locks in the MOTM winner: the highest-scoring candidate
// gets man_of_match on their stat line, everyone else is cleared, and the
// game is flagged finalized. A second finalize is rejected.
func (s *VoteService) FinalizeVoting(gameID uint) (*models.FinalizeVotingResponse, error) {
	var resp *models.FinalizeVotingResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.First(&game, gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotFound
			}
			return err
		}
		if game.MotmFinalized {
			return ErrVotingFinalized
		}

		votes, err := s.loadVotes(tx, gameID)
		if err != nil {
			return err
		}
		if len(votes) == 0 {
			return ErrNoVotes
		}

		winner := utils.TallyVotes(votes)[0]

		if err := tx.Model(&models.GameStat{}).
			Where("game_id = ?", gameID).
			Update("man_of_match", gorm.Expr("player_id = ?", winner.PlayerID)).Error; err != nil {
			return err
		}

		if err := tx.Model(&game).Update("motm_finalized", true).Error; err != nil {
			return err
		}

		var player models.Player
		if err := tx.First(&player, winner.PlayerID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		resp = &models.FinalizeVotingResponse{
			Success:        true,
			MotmPlayerID:   winner.PlayerID,
			MotmPlayerName: player.Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

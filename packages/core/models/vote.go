package models

import (
	"time"

	"gorm.io/gorm"
)

// Vote is one voter's ranked MOTM ballot for one game. A voter holds at
// most one ballot per game (unique index on game_id+voter_id); submitting
// again replaces the choices in place.
type Vote struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	GameID       uint           `gorm:"not null;uniqueIndex:idx_votes_game_voter;constraint:OnDelete:CASCADE" json:"game_id"`
	VoterID      uint           `gorm:"not null;uniqueIndex:idx_votes_game_voter;constraint:OnDelete:CASCADE" json:"voter_id"`
	FirstChoice  uint           `gorm:"not null" json:"first_choice"`
	SecondChoice *uint          `json:"second_choice,omitempty"`
	ThirdChoice  *uint          `json:"third_choice,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Game  Game   `gorm:"foreignKey:GameID;references:ID" json:"game,omitempty"`
	Voter Player `gorm:"foreignKey:VoterID;references:ID" json:"voter,omitempty"`
}

func (Vote) TableName() string {
	return "votes"
}

type SubmitVoteRequest struct {
	GameID       uint  `json:"game_id" binding:"required"`
	FirstChoice  uint  `json:"first_choice" binding:"required"`
	SecondChoice *uint `json:"second_choice,omitempty"`
	ThirdChoice  *uint `json:"third_choice,omitempty"`
}

type VoteDetail struct {
	VoteID       uint      `json:"vote_id"`
	FirstChoice  string    `json:"first_choice"`
	SecondChoice *string   `json:"second_choice,omitempty"`
	ThirdChoice  *string   `json:"third_choice,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type VoteResult struct {
	PlayerID          uint   `json:"player_id"`
	PlayerName        string `json:"player_name"`
	FirstChoiceVotes  int    `json:"first_choice_votes"`
	SecondChoiceVotes int    `json:"second_choice_votes"`
	ThirdChoiceVotes  int    `json:"third_choice_votes"`
	TotalPoints       int    `json:"total_points"`
}

type VoteResultsResponse struct {
	Results []VoteResult `json:"results"`
}

type AllVotesResponse struct {
	Votes     []VoteDetail `json:"votes"`
	Aggregate []VoteResult `json:"aggregate"`
}

type FinalizeVotingResponse struct {
	Success        bool   `json:"success"`
	MotmPlayerID   uint   `json:"motm_player_id"`
	MotmPlayerName string `json:"motm_player_name"`
}

package services

import "errors"

// Domain errors surfaced to handlers; anything else coming out of a
// service is treated as an infrastructure failure (500).
var (
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found")

	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrDuplicatePlayer  = errors.New("a player appears more than once in the stats")
	ErrScoreMismatch    = errors.New("submitted scores do not match the stat lines")
	ErrDuplicateChoices = errors.New("vote choices must be distinct players")
	ErrNoVotes          = errors.New("no votes found for this game")
	ErrVotingFinalized  = errors.New("voting is already finalized for this game")
	ErrUserAlreadyBound = errors.New("player with this user id already exists")
)

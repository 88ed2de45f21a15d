package utils

import (
	"testing"

	"core/models"

	"github.com/stretchr/testify/assert"
)

func ptr(v uint) *uint { return &v }

func TestTallyVotes_WeightedPoints(t *testing.T) {
	votes := []models.Vote{
		{VoterID: 10, FirstChoice: 1, SecondChoice: ptr(2), ThirdChoice: ptr(3)},
		{VoterID: 11, FirstChoice: 2, SecondChoice: ptr(1), ThirdChoice: ptr(3)},
		{VoterID: 12, FirstChoice: 1, SecondChoice: ptr(3), ThirdChoice: ptr(2)},
	}

	tallies := TallyVotes(votes)

	assert.Len(t, tallies, 3)

	// Player 1: two firsts and a second = 3+3+2 = 8
	assert.Equal(t, uint(1), tallies[0].PlayerID)
	assert.Equal(t, 8, tallies[0].TotalPoints)
	assert.Equal(t, 2, tallies[0].FirstChoiceVotes)
	assert.Equal(t, 1, tallies[0].SecondChoiceVotes)

	// Player 2: a first, a second and a third = 3+2+1 = 6
	assert.Equal(t, uint(2), tallies[1].PlayerID)
	assert.Equal(t, 6, tallies[1].TotalPoints)

	// Player 3: a second and two thirds = 2+1+1 = 4
	assert.Equal(t, uint(3), tallies[2].PlayerID)
	assert.Equal(t, 4, tallies[2].TotalPoints)
}

func TestTallyVotes_ThreeBallotScenario(t *testing.T) {
	// first=1,second=2 / first=2,third=1 / first=1
	votes := []models.Vote{
		{VoterID: 10, FirstChoice: 1, SecondChoice: ptr(2)},
		{VoterID: 11, FirstChoice: 2, ThirdChoice: ptr(1)},
		{VoterID: 12, FirstChoice: 1},
	}

	tallies := TallyVotes(votes)

	assert.Equal(t, uint(1), tallies[0].PlayerID)
	assert.Equal(t, 7, tallies[0].TotalPoints, "two firsts and a third")
	assert.Equal(t, uint(2), tallies[1].PlayerID)
	assert.Equal(t, 5, tallies[1].TotalPoints, "a first and a second")
}

func TestTallyVotes_PartialBallots(t *testing.T) {
	votes := []models.Vote{
		{VoterID: 10, FirstChoice: 1},
		{VoterID: 11, FirstChoice: 1, SecondChoice: ptr(2)},
	}

	tallies := TallyVotes(votes)

	assert.Len(t, tallies, 2)
	assert.Equal(t, uint(1), tallies[0].PlayerID)
	assert.Equal(t, 6, tallies[0].TotalPoints)
	assert.Equal(t, uint(2), tallies[1].PlayerID)
	assert.Equal(t, 2, tallies[1].TotalPoints)
}

func TestTallyVotes_TieBreaksByPlayerID(t *testing.T) {
	votes := []models.Vote{
		{VoterID: 10, FirstChoice: 5},
		{VoterID: 11, FirstChoice: 2},
	}

	tallies := TallyVotes(votes)

	assert.Equal(t, tallies[0].TotalPoints, tallies[1].TotalPoints)
	assert.Equal(t, uint(2), tallies[0].PlayerID, "equal points rank by ascending id")
	assert.Equal(t, uint(5), tallies[1].PlayerID)
}

func TestTallyVotes_Empty(t *testing.T) {
	assert.Empty(t, TallyVotes(nil))
}

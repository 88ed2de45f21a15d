package utils

import (
	"sort"

	"core/models"
)

// Ranked-choice weights: 3 points for a first choice, 2 for a second,
// 1 for a third.
const (
	FirstChoicePoints  = 3
	SecondChoicePoints = 2
	ThirdChoicePoints  = 1
)

// CandidateTally is the aggregated ballot count for one candidate.
type CandidateTally struct {
	PlayerID          uint
	FirstChoiceVotes  int
	SecondChoiceVotes int
	ThirdChoiceVotes  int
	TotalPoints       int
}

// TallyVotes aggregates the ballots of one game into per-candidate counts
// and ranks candidates by total points descending. Ties break by ascending
// player id so the ranking is deterministic.
func TallyVotes(votes []models.Vote) []CandidateTally {
	counts := make(map[uint]*CandidateTally)

	slot := func(playerID uint) *CandidateTally {
		t, ok := counts[playerID]
		if !ok {
			t = &CandidateTally{PlayerID: playerID}
			counts[playerID] = t
		}
		return t
	}

	for _, v := range votes {
		slot(v.FirstChoice).FirstChoiceVotes++
		if v.SecondChoice != nil {
			slot(*v.SecondChoice).SecondChoiceVotes++
		}
		if v.ThirdChoice != nil {
			slot(*v.ThirdChoice).ThirdChoiceVotes++
		}
	}

	tallies := make([]CandidateTally, 0, len(counts))
	for _, t := range counts {
		t.TotalPoints = FirstChoicePoints*t.FirstChoiceVotes +
			SecondChoicePoints*t.SecondChoiceVotes +
			ThirdChoicePoints*t.ThirdChoiceVotes
		tallies = append(tallies, *t)
	}

	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].TotalPoints != tallies[j].TotalPoints {
			return tallies[i].TotalPoints > tallies[j].TotalPoints
		}
		return tallies[i].PlayerID < tallies[j].PlayerID
	})

	return tallies
}

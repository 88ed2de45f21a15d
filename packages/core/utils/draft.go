package utils

import "core/models"

// Scores holds the derived team totals for a single game.
type Scores struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// ComputeScores derives the team scores from the stat lines: a team's
// score is its own players' goals plus the opposing team's own goals.
func ComputeScores(stats []models.GameStat) Scores {
	var s Scores
	for _, st := range stats {
		if st.Team == models.TeamBlack {
			s.Black += st.Goals
			s.White += st.OwnGoals
		} else {
			s.White += st.Goals
			s.Black += st.OwnGoals
		}
	}
	return s
}

// Conceded returns the goals conceded by the given team.
func (s Scores) Conceded(team string) int {
	if team == models.TeamBlack {
		return s.White
	}
	return s.Black
}

// DeriveCleanSheets sets the clean-sheet flag on every goalkeeper line:
// true iff the keeper's team conceded zero goals. Non-keeper lines always
// carry false. Pure function of the current state, safe to re-run.
func DeriveCleanSheets(stats []models.GameStat, scores Scores) {
	for i := range stats {
		stats[i].CleanSheet = stats[i].IsGoalkeeper && scores.Conceded(stats[i].Team) == 0
	}
}

// Draft is the serializable in-progress state of a game being entered or
// edited by a manager. Every mutation re-derives the team scores and the
// goalkeepers' clean-sheet flags, so the struct is always self-consistent.
type Draft struct {
	Date   string            `json:"date"`
	Stats  []models.GameStat `json:"stats"`
	Scores Scores            `json:"scores"`
}

func NewDraft(date string) *Draft {
	return &Draft{Date: date}
}

func (d *Draft) find(playerID uint) *models.GameStat {
	for i := range d.Stats {
		if d.Stats[i].PlayerID == playerID {
			return &d.Stats[i]
		}
	}
	return nil
}

// AddPlayer puts a player on a team with a zeroed stat line. Adding a
// player already in the draft just moves them to the given team.
func (d *Draft) AddPlayer(playerID uint, team string) {
	if st := d.find(playerID); st != nil {
		st.Team = team
		d.recalc()
		return
	}
	d.Stats = append(d.Stats, models.GameStat{PlayerID: playerID, Team: team})
	d.recalc()
}

func (d *Draft) RemovePlayer(playerID uint) {
	for i := range d.Stats {
		if d.Stats[i].PlayerID == playerID {
			d.Stats = append(d.Stats[:i], d.Stats[i+1:]...)
			break
		}
	}
	d.recalc()
}

func (d *Draft) AddGoal(playerID uint) {
	if st := d.find(playerID); st != nil {
		st.Goals++
		d.recalc()
	}
}

func (d *Draft) AddAssist(playerID uint) {
	if st := d.find(playerID); st != nil {
		st.Assists++
	}
}

func (d *Draft) AddOwnGoal(playerID uint) {
	if st := d.find(playerID); st != nil {
		st.OwnGoals++
		d.recalc()
	}
}

func (d *Draft) ToggleGoalkeeper(playerID uint) {
	if st := d.find(playerID); st != nil {
		st.IsGoalkeeper = !st.IsGoalkeeper
		d.recalc()
	}
}

func (d *Draft) ToggleCaptain(playerID uint) {
	if st := d.find(playerID); st != nil {
		st.IsCaptain = !st.IsCaptain
	}
}

func (d *Draft) recalc() {
	d.Scores = ComputeScores(d.Stats)
	DeriveCleanSheets(d.Stats, d.Scores)
}

package models

// PlayerStats is one leaderboard row: a player's career aggregates over
// every recorded game plus the derived ratios.
type PlayerStats struct {
	PlayerID      uint     `json:"player_id"`
	PlayerName    string   `json:"player_name"`
	GamesPlayed   int      `json:"games_played"`
	Goals         int      `json:"goals"`
	Assists       int      `json:"assists"`
	Wins          int      `json:"wins"`
	Draws         int      `json:"draws"`
	Losses        int      `json:"losses"`
	Motm          int      `json:"motm"`
	CleanSheets   int      `json:"clean_sheets"`
	WinPercentage int      `json:"win_percentage"`
	TotalPoints   int      `json:"total_points"`
	PointsPerGame float64  `json:"points_per_game"`
	Last5         []string `json:"last5"`
}

type LeaderboardResponse struct {
	Stats []PlayerStats `json:"stats"`
}

// TopPlayer is one row of a top-N view (scorers, assisters, MOTM,
// clean sheets); Value holds whichever metric the view ranks by.
type TopPlayer struct {
	PlayerID    uint   `json:"player_id"`
	PlayerName  string `json:"player_name"`
	Value       int    `json:"value"`
	GamesPlayed int    `json:"games_played"`
}

type TopPlayersResponse struct {
	Players []TopPlayer `json:"players"`
}

// TeamStanding aggregates all games from one team's point of view.
type TeamStanding struct {
	Team           string `json:"team"`
	GamesPlayed    int    `json:"games_played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// GameSummary is one line of the MATCH RESULTS export section.
type GameSummary struct {
	GameID     uint   `json:"game_id"`
	Date       string `json:"date"`
	BlackScore int    `json:"black_score"`
	WhiteScore int    `json:"white_score"`
	Winner     string `json:"winner"`
	MotmName   string `json:"motm"`
}

type ExportResponse struct {
	CSV string `json:"csv"`
}

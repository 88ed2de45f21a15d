package models

import (
	"time"

	"gorm.io/gorm"
)

// Team names for a game. Every stat line is tagged with one of these.
const (
	TeamBlack = "Black"
	TeamWhite = "White"
)

type Game struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	GameDate      time.Time      `gorm:"type:date;not null" json:"game_date"`
	BlackScore    int            `gorm:"not null;default:0" json:"black_score"`
	WhiteScore    int            `gorm:"not null;default:0" json:"white_score"`
	MotmFinalized bool           `gorm:"not null;default:false" json:"motm_finalized"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Stats []GameStat `gorm:"foreignKey:GameID" json:"stats,omitempty"`
	Votes []Vote     `gorm:"foreignKey:GameID" json:"votes,omitempty"`
}

func (Game) TableName() string {
	return "games"
}

// Winner returns "Black", "White" or "Draw" from the recorded scores.
func (g *Game) Winner() string {
	switch {
	case g.BlackScore > g.WhiteScore:
		return TeamBlack
	case g.WhiteScore > g.BlackScore:
		return TeamWhite
	default:
		return "Draw"
	}
}

// GameStat is one player's line in one game. A player appears at most
// once per game (unique index on game_id+player_id).
type GameStat struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GameID       uint      `gorm:"not null;uniqueIndex:idx_game_stats_game_player;constraint:OnDelete:CASCADE" json:"game_id"`
	PlayerID     uint      `gorm:"not null;uniqueIndex:idx_game_stats_game_player;constraint:OnDelete:CASCADE" json:"player_id"`
	Team         string    `gorm:"size:10;not null" json:"team"` // Black, White
	Goals        int       `gorm:"not null;default:0" json:"goals"`
	Assists      int       `gorm:"not null;default:0" json:"assists"`
	OwnGoals     int       `gorm:"not null;default:0" json:"own_goals"`
	IsGoalkeeper bool      `gorm:"not null;default:false" json:"is_goalkeeper"`
	IsCaptain    bool      `gorm:"not null;default:false" json:"is_captain"`
	CleanSheet   bool      `gorm:"not null;default:false" json:"clean_sheet"`
	ManOfMatch   bool      `gorm:"not null;default:false" json:"man_of_match"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Game   Game   `gorm:"foreignKey:GameID;references:ID" json:"game,omitempty"`
	Player Player `gorm:"foreignKey:PlayerID;references:ID" json:"player,omitempty"`
}

func (GameStat) TableName() string {
	return "game_stats"
}

// DTOs

type PlayerStatInput struct {
	PlayerID     uint   `json:"player_id" binding:"required"`
	Team         string `json:"team" binding:"required,oneof=Black White"`
	Goals        int    `json:"goals" binding:"gte=0"`
	Assists      int    `json:"assists" binding:"gte=0"`
	OwnGoals     int    `json:"own_goals" binding:"gte=0"`
	IsGoalkeeper bool   `json:"is_goalkeeper"`
	IsCaptain    bool   `json:"is_captain"`
	CleanSheet   bool   `json:"clean_sheet"`
	ManOfMatch   bool   `json:"man_of_match"`
}

type CreateGameRequest struct {
	Date       string            `json:"date" binding:"required"`
	BlackScore int               `json:"black_score" binding:"gte=0"`
	WhiteScore int               `json:"white_score" binding:"gte=0"`
	Stats      []PlayerStatInput `json:"stats" binding:"required,dive"`
}

type UpdateGameRequest struct {
	Date       *string           `json:"date,omitempty"`
	BlackScore *int              `json:"black_score,omitempty" binding:"omitempty,gte=0"`
	WhiteScore *int              `json:"white_score,omitempty" binding:"omitempty,gte=0"`
	Stats      []PlayerStatInput `json:"stats,omitempty" binding:"omitempty,dive"`
}

type PlayerStatDetail struct {
	PlayerID     uint   `json:"player_id"`
	PlayerName   string `json:"player_name"`
	Team         string `json:"team"`
	Goals        int    `json:"goals"`
	Assists      int    `json:"assists"`
	OwnGoals     int    `json:"own_goals"`
	IsGoalkeeper bool   `json:"is_goalkeeper"`
	IsCaptain    bool   `json:"is_captain"`
	CleanSheet   bool   `json:"clean_sheet"`
	ManOfMatch   bool   `json:"man_of_match"`
}

type GameResponse struct {
	ID            uint               `json:"id"`
	Date          string             `json:"date"`
	BlackScore    int                `json:"black_score"`
	WhiteScore    int                `json:"white_score"`
	Winner        string             `json:"winner"`
	MotmFinalized bool               `json:"motm_finalized"`
	Stats         []PlayerStatDetail `json:"stats"`
}

type ScorerEntry struct {
	Name  string `json:"name"`
	Goals int    `json:"goals"`
}

type AssisterEntry struct {
	Name    string `json:"name"`
	Assists int    `json:"assists"`
}

type GameListItem struct {
	ID             uint            `json:"id"`
	Date           string          `json:"date"`
	BlackScore     int             `json:"black_score"`
	WhiteScore     int             `json:"white_score"`
	Winner         string          `json:"winner"`
	MotmFinalized  bool            `json:"motm_finalized"`
	MotmPlayerName *string         `json:"motm_player_name,omitempty"`
	Scorers        []ScorerEntry   `json:"scorers"`
	Assisters      []AssisterEntry `json:"assisters"`
}

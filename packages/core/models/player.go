package models

import (
	"time"

	"gorm.io/gorm"
)

// Player roles. Managers record games, manage the squad and finalize
// MOTM voting; players vote and edit their own profile.
const (
	RolePlayer  = "player"
	RoleManager = "manager"
)

type Player struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Nickname       *string        `gorm:"size:255" json:"nickname,omitempty"`
	ProfilePicture *string        `gorm:"type:text" json:"profile_picture,omitempty"`
	UserID         *uint          `gorm:"uniqueIndex" json:"user_id,omitempty"`
	Role           string         `gorm:"size:20;not null;default:player" json:"role"` // player, manager
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Stats []GameStat `gorm:"foreignKey:PlayerID" json:"stats,omitempty"`
	Votes []Vote     `gorm:"foreignKey:VoterID" json:"votes,omitempty"`
}

func (Player) TableName() string {
	return "players"
}

type CreatePlayerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Nickname *string `json:"nickname,omitempty"`
	UserID   *uint   `json:"user_id,omitempty"`
	Role     string  `json:"role" binding:"required,oneof=player manager"`
}

type UpdatePlayerRequest struct {
	Name           *string `json:"name,omitempty"`
	Nickname       *string `json:"nickname,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

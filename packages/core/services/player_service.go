package services

import (
	"errors"

	"core/models"

	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player

	result := s.db.First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, result.Error
	}

	return &player, nil
}

// GetAllPlayers lists the squad ordered by name.
func (s *PlayerService) GetAllPlayers() ([]models.Player, error) {
	var players []models.Player

	result := s.db.Order("name ASC").Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (s *PlayerService) CreatePlayer(req models.CreatePlayerRequest) (*models.Player, error) {
	if req.UserID != nil {
		var existing models.Player
		if err := s.db.Where("user_id = ?", *req.UserID).First(&existing).Error; err == nil {
			return nil, ErrUserAlreadyBound
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	player := &models.Player{
		Name:     req.Name,
		Nickname: req.Nickname,
		UserID:   req.UserID,
		Role:     req.Role,
	}

	if err := s.db.Create(player).Error; err != nil {
		return nil, err
	}

	return player, nil
}

func (s *PlayerService) UpdatePlayer(id uint, req models.UpdatePlayerRequest) (*models.Player, error) {
	player, err := s.GetPlayerByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		player.Name = *req.Name
	}
	if req.Nickname != nil {
		player.Nickname = req.Nickname
	}
	if req.ProfilePicture != nil {
		player.ProfilePicture = req.ProfilePicture
	}

	if err := s.db.Save(player).Error; err != nil {
		return nil, err
	}

	return player, nil
}

// DeletePlayer removes a player together with their stat lines and
// ballots, in one transaction.
func (s *PlayerService) DeletePlayer(id uint) error {
	player, err := s.GetPlayerByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("player_id = ?", id).Delete(&models.GameStat{}).Error; err != nil {
			return err
		}
		if err := tx.Where("voter_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Delete(player).Error
	})
}

// PlayerIDForUser resolves the player bound to a user account, if any.
// Used by the auth module to stamp the player id into session tokens.
func (s *PlayerService) PlayerIDForUser(userID uint) (*uint, error) {
	var player models.Player
	if err := s.db.Where("user_id = ?", userID).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	id := player.ID
	return &id, nil
}

package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/casinoapp/casino-games/internal/models"
)

type FavoriteService struct {
	DB *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{DB: db}
}

// Toggle flips the favorite state for a (user, game) pair and reports
// whether the pair ended up added or removed. The delete is a single
// conditional statement and the insert is guarded by the unique index on
// (user_id, game_id), so two concurrent toggles cannot leave duplicates.
func (s *FavoriteService) Toggle(userID, gameID uint) (added bool, err error) {
	var game models.Game
	if err := s.DB.First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrGameNotFound
		}
		return false, err
	}

	result := s.DB.Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	favorite := models.Favorite{
		UserID: userID,
		GameID: gameID,
	}
	if err := s.DB.Create(&favorite).Error; err != nil {
		// A concurrent toggle got there first; the pair is favorited
		// either way.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}

	return true, nil
}

// ListFavorites returns the games the user has favorited. Every returned
// game carries isFavorite=true by construction.
func (s *FavoriteService) ListFavorites(userID uint) ([]models.GameWithFavorite, error) {
	var favorites []models.Favorite
	result := s.DB.Preload("Game").
		Where("user_id = ?", userID).
		Find(&favorites)
	if result.Error != nil {
		return nil, result.Error
	}

	games := make([]models.GameWithFavorite, 0, len(favorites))
	for _, favorite := range favorites {
		games = append(games, models.GameWithFavorite{
			Game:       favorite.Game,
			IsFavorite: true,
		})
	}

	return games, nil
}

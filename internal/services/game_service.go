package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/casinoapp/casino-games/internal/models"
)

const sportsCacheKey = "games:sports"

type GameService struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewGameService(db *gorm.DB, redisClient *redis.Client) *GameService {
	return &GameService{DB: db, Redis: redisClient}
}

// ListGames returns the catalog annotated with the requesting user's
// favorite flag. When sport is non-empty only exact matches are returned.
func (s *GameService) ListGames(userID uint, sport string) ([]models.GameWithFavorite, error) {
	query := s.DB.Model(&models.Game{}).
		Preload("Favorites", "user_id = ?", userID)
	if sport != "" {
		query = query.Where("sport = ?", sport)
	}

	var games []models.Game
	if err := query.Find(&games).Error; err != nil {
		return nil, err
	}

	annotated := make([]models.GameWithFavorite, 0, len(games))
	for _, game := range games {
		isFavorite := len(game.Favorites) > 0
		game.Favorites = nil
		annotated = append(annotated, models.GameWithFavorite{
			Game:       game,
			IsFavorite: isFavorite,
		})
	}

	return annotated, nil
}

// ListSports returns the distinct sport labels in the catalog. The catalog
// is seed-only, so the Redis cache never needs invalidation.
func (s *GameService) ListSports(ctx context.Context) ([]string, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, sportsCacheKey).Result(); err == nil {
			var sports []string
			if err := json.Unmarshal([]byte(cached), &sports); err == nil {
				return sports, nil
			}
		}
	}

	var sports []string
	if err := s.DB.Model(&models.Game{}).Distinct("sport").Pluck("sport", &sports).Error; err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if encoded, err := json.Marshal(sports); err == nil {
			s.Redis.Set(ctx, sportsCacheKey, encoded, 24*time.Hour)
		}
	}

	return sports, nil
}

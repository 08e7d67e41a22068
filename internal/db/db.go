package db

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/casinoapp/casino-games/internal/config"
	"github.com/casinoapp/casino-games/internal/models"
)

// Connect establishes a connection to the database, migrates the schema and
// loads the seed games into an empty catalog.
func Connect(config config.DatabaseConfig) (*gorm.DB, error) {
	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey,
	// which the favorite toggle and registration rely on.
	db, err := gorm.Open(postgres.Open(config.URL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := SeedGames(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate applies the schema for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Game{}, &models.Favorite{})
}

// ConnectRedis establishes a connection to Redis
func ConnectRedis(config config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test the connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}

	return client, nil
}

// SeedGames loads the fixture catalog if the games table is empty. Games are
// read-only at runtime, so seeding once is enough.
func SeedGames(db *gorm.DB) error {
	var gameCount int64
	if err := db.Model(&models.Game{}).Count(&gameCount).Error; err != nil {
		return err
	}
	if gameCount > 0 {
		return nil
	}

	games := []models.Game{
		// Cricket
		{Name: "MI vs CSK", Sport: "Cricket", League: "IPL"},
		{Name: "RCB vs KKR", Sport: "Cricket", League: "IPL"},
		{Name: "India vs Australia", Sport: "Cricket", League: "Test Series"},
		{Name: "England vs Pakistan", Sport: "Cricket", League: "ODI Series"},

		// Football
		{Name: "Real Madrid vs Barcelona", Sport: "Football", League: "La Liga"},
		{Name: "Man City vs Arsenal", Sport: "Football", League: "EPL"},
		{Name: "Liverpool vs Man United", Sport: "Football", League: "EPL"},
		{Name: "Bayern vs Dortmund", Sport: "Football", League: "Bundesliga"},
		{Name: "PSG vs Marseille", Sport: "Football", League: "Ligue 1"},

		// Tennis
		{Name: "Djokovic vs Alcaraz", Sport: "Tennis", League: "Wimbledon"},
		{Name: "Nadal vs Federer", Sport: "Tennis", League: "French Open"},
		{Name: "Serena vs Venus", Sport: "Tennis", League: "US Open"},
	}

	if err := db.Create(&games).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d games", len(games))
	return nil
}

package models

type Game struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `json:"name"`
	Sport  string `gorm:"index" json:"sport"`
	League string `json:"league"`

	// Relations (for eager loading)
	Favorites []Favorite `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"-"`
}

// GameWithFavorite is a Game projected for a specific user. IsFavorite is
// computed at read time and never stored on the game row.
type GameWithFavorite struct {
	Game
	IsFavorite bool `json:"isFavorite"`
}

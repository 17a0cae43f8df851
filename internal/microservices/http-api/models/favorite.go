package models

import "time"

// Favorite pairs are unique per (movie, user); the repository checks before insert.
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MovieID   int64     `gorm:"not null;index:idx_favorites_movie_user" json:"movie_id"`
	UserID    int64     `gorm:"not null;index:idx_favorites_movie_user;index" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Movie *Movie `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}

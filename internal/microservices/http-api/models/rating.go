package models

import "time"

// Rating is a single numeric score; a user may rate the same movie more than once.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	MovieID   int64     `json:"movie_id" gorm:"not null;index"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	Value     float64   `json:"value" gorm:"not null;check:value >= 0 AND value <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
}

func (Rating) TableName() string {
	return "ratings"
}

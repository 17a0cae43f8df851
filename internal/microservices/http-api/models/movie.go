package models

import "time"

type Movie struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null;index" json:"title"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Genre       string    `gorm:"not null;index" json:"genre"`
	Year        int       `gorm:"not null" json:"year"`
	PosterURL   *string   `gorm:"column:poster_url" json:"poster_url,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

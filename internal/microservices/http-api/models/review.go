package models

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	MovieID   int64     `json:"movie_id" gorm:"not null;index"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	Text      string    `json:"text" gorm:"not null;type:text"`
	Rating    *int      `json:"rating,omitempty" gorm:"check:rating >= 1 AND rating <= 5"`
	Approved  bool      `json:"approved" gorm:"not null;default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
}

func (Review) TableName() string {
	return "reviews"
}

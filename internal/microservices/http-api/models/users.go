package models

import "time"

// User roles are independent flags; a moderator is usually also a user.
type User struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	IsUser      bool      `gorm:"not null" json:"is_user"`
	IsModerator bool      `gorm:"not null;default:false" json:"is_moderator"`
	IsAdmin     bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// CanModerate reports whether the user may approve or remove other users' reviews.
func (u *User) CanModerate() bool {
	return u.IsModerator || u.IsAdmin
}

package dto

import (
	"time"

	"moviereview/internal/microservices/http-api/models"
)

// Data Transfer Objects for user and authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
	Username string `json:"username" binding:"required,min=1,max=50"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest: partial update, absent fields stay unchanged
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=1,max=72"`
	Username *string `json:"username,omitempty" binding:"omitempty,min=1,max=50"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	IsUser      bool      `json:"is_user"`
	IsModerator bool      `json:"is_moderator"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromModelToUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		IsUser:      u.IsUser,
		IsModerator: u.IsModerator,
		IsAdmin:     u.IsAdmin,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// LoginResponse: the user record plus a bearer token
type LoginResponse struct {
	UserResponse
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "Bearer"
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

package dto

import "time"

type FavoriteResponse struct {
	ID        int64          `json:"id"`
	MovieID   int64          `json:"movie_id"`
	UserID    int64          `json:"user_id"`
	Movie     *MovieResponse `json:"movie,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type FavoriteStatusResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

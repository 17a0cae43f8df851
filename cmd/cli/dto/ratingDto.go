package dto

import "time"

type CreateRatingRequest struct {
	Value float64 `json:"value"`
}

type RatingResponse struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movie_id"`
	UserID    int64     `json:"user_id"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

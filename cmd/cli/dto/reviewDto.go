package dto

import "time"

type CreateReviewRequest struct {
	Text   string `json:"text"`
	Rating *int   `json:"rating,omitempty"`
}

type ReviewResponse struct {
	ID         int64     `json:"id"`
	MovieID    int64     `json:"movie_id"`
	UserID     int64     `json:"user_id"`
	Text       string    `json:"text"`
	Rating     *int      `json:"rating"`
	Approved   bool      `json:"approved"`
	Username   string    `json:"username,omitempty"`
	MovieTitle string    `json:"movie_title,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

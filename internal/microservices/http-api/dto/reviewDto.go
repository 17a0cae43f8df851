package dto

import (
	"time"

	"moviereview/internal/microservices/http-api/models"
)

// CreateReviewDTO for POST /api/reviews/movie/:movie_id; the author comes from the token
type CreateReviewDTO struct {
	Text   string `json:"text" binding:"required"`
	Rating *int   `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
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
	UpdatedAt  time.Time `json:"updated_at"`
}

// FromModelToReviewResponse fills Username and MovieTitle only when the associations were preloaded
func FromModelToReviewResponse(r *models.Review) *ReviewResponse {
	resp := &ReviewResponse{
		ID:        r.ID,
		MovieID:   r.MovieID,
		UserID:    r.UserID,
		Text:      r.Text,
		Rating:    r.Rating,
		Approved:  r.Approved,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.User != nil {
		resp.Username = r.User.Username
	}
	if r.Movie != nil {
		resp.MovieTitle = r.Movie.Title
	}
	return resp
}

func FromModelsToReviewResponses(list []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModelToReviewResponse(&list[i]))
	}
	return out
}

package dto

import (
	"time"

	"moviereview/internal/microservices/http-api/models"
)

// CreateRatingDTO for submitting a rating; the pointer lets 0 through "required"
type CreateRatingDTO struct {
	Value *float64 `json:"value" binding:"required,min=0,max=5"`
}

// RatingResponse for returning rating information
type RatingResponse struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movie_id"`
	UserID    int64     `json:"user_id"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:        rating.ID,
		MovieID:   rating.MovieID,
		UserID:    rating.UserID,
		Value:     rating.Value,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

func FromModelsToRatingResponses(list []models.Rating) []RatingResponse {
	out := make([]RatingResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModelToRatingResponse(&list[i]))
	}
	return out
}

package dto

import (
	"time"

	"moviereview/internal/microservices/http-api/models"
)

type FavoriteResponse struct {
	ID        int64          `json:"id"`
	MovieID   int64          `json:"movie_id"`
	UserID    int64          `json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	Movie     *MovieResponse `json:"movie,omitempty"`
}

// FavoriteStatusResponse for the membership check
type FavoriteStatusResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

func FromModelToFavoriteResponse(f *models.Favorite) *FavoriteResponse {
	resp := &FavoriteResponse{
		ID:        f.ID,
		MovieID:   f.MovieID,
		UserID:    f.UserID,
		CreatedAt: f.CreatedAt,
	}
	if f.Movie != nil {
		resp.Movie = FromModelToMovieResponse(f.Movie)
	}
	return resp
}

func FromModelsToFavoriteResponses(list []models.Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModelToFavoriteResponse(&list[i]))
	}
	return out
}

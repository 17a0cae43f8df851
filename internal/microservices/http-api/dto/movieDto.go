package dto

import (
	"time"

	"moviereview/internal/microservices/http-api/models"
)

// CreateMovieDTO used for POST /api/movies
type CreateMovieDTO struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description,omitempty"`
	Genre       string  `json:"genre" binding:"required"`
	Year        int     `json:"year" binding:"required,min=1850,max=2100"`
	PosterURL   *string `json:"poster_url,omitempty" binding:"omitempty,url"`
}

type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Genre       string    `json:"genre"`
	Year        int       `json:"year"`
	PosterURL   *string   `json:"poster_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MovieStatsResponse for GET /api/movies/stats
type MovieStatsResponse struct {
	MoviesCount  int64 `json:"movies_count"`
	ReviewsCount int64 `json:"reviews_count"`
}

// Converters
func (d CreateMovieDTO) ToModel() models.Movie {
	return models.Movie{
		Title:       d.Title,
		Description: d.Description,
		Genre:       d.Genre,
		Year:        d.Year,
		PosterURL:   d.PosterURL,
	}
}

func FromModelToMovieResponse(m *models.Movie) *MovieResponse {
	return &MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Genre:       m.Genre,
		Year:        m.Year,
		PosterURL:   m.PosterURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModelsToMovieResponses(list []models.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromModelToMovieResponse(&list[i]))
	}
	return out
}

package dto

import "time"

type CreateMovieRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Genre       string  `json:"genre"`
	Year        int     `json:"year"`
	PosterURL   *string `json:"poster_url,omitempty"`
}

type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Genre       string    `json:"genre"`
	Year        int       `json:"year"`
	PosterURL   *string   `json:"poster_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type MovieStatsResponse struct {
	MoviesCount  int64 `json:"movies_count"`
	ReviewsCount int64 `json:"reviews_count"`
}

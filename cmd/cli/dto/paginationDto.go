package dto

// Page mirrors the server's paginated envelope.
type Page[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type StatusResponse struct {
	Status   string `json:"status"`
	UserID   int64  `json:"user_id,omitempty"`
	MovieID  int64  `json:"movie_id,omitempty"`
	ReviewID int64  `json:"review_id,omitempty"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

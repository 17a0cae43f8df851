package dto

// Pagination defaults shared by every paged listing.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginatedResponse wraps one page of results
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginatedResponse creates a paginated response; Data is never null in JSON.
func NewPaginatedResponse[T any](data []T, total, page, pageSize int) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = total / pageSize
		if total%pageSize != 0 {
			totalPages++
		}
	}

	return &PaginatedResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// NormalizePage clamps page and pageSize into the accepted range.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// StatusResponse is the body of delete/approve/remove acknowledgements.
type StatusResponse struct {
	Status   string `json:"status"`
	UserID   int64  `json:"user_id,omitempty"`
	MovieID  int64  `json:"movie_id,omitempty"`
	ReviewID int64  `json:"review_id,omitempty"`
}

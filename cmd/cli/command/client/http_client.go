package client

// http_client.go = handles HTTP client functionality for the moviereview CLI.

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"moviereview/cmd/cli/dto"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// defines the HTTP client structure and methods
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// constructor for HTTP client
func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// set token for HTTP client
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// do sends body as JSON and decodes a want-status answer into out.
func (c *HTTPClient) do(method, path string, body any, want int, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // Ensure the response body is closed

	if resp.StatusCode != want {
		var apiErr dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Users

func (c *HTTPClient) Register(request *dto.RegisterRequest) (*dto.UserResponse, error) {
	var result dto.UserResponse
	if err := c.do(http.MethodPost, "/api/users/register", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Login(request *dto.LoginRequest) (*dto.LoginResponse, error) {
	var result dto.LoginResponse
	if err := c.do(http.MethodPost, "/api/users/login", request, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Me() (*dto.UserResponse, error) {
	var result dto.UserResponse
	if err := c.do(http.MethodGet, "/api/users/me", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Movies

func (c *HTTPClient) ListMovies(genre, sort string) ([]dto.MovieResponse, error) {
	q := url.Values{}
	if genre != "" {
		q.Set("genre", genre)
	}
	if sort != "" {
		q.Set("sort", sort)
	}
	path := "/api/movies"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var result []dto.MovieResponse
	if err := c.do(http.MethodGet, path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) GetMovie(id int64) (*dto.MovieResponse, error) {
	var result dto.MovieResponse
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/movies/%d", id), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) MovieStats() (*dto.MovieStatsResponse, error) {
	var result dto.MovieStatsResponse
	if err := c.do(http.MethodGet, "/api/movies/stats", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateMovie(request *dto.CreateMovieRequest) (*dto.MovieResponse, error) {
	var result dto.MovieResponse
	if err := c.do(http.MethodPost, "/api/movies", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteMovie(id int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/movies/%d", id), nil, http.StatusOK, nil)
}

// Reviews

func (c *HTTPClient) ListReviews(movieID int64, approvedOnly bool) ([]dto.ReviewResponse, error) {
	path := fmt.Sprintf("/api/reviews/movie/%d?approved_only=%s", movieID, strconv.FormatBool(approvedOnly))
	var result []dto.ReviewResponse
	if err := c.do(http.MethodGet, path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) CreateReview(movieID int64, request *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	var result dto.ReviewResponse
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/reviews/movie/%d", movieID), request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) PendingReviews(page, pageSize int) (*dto.Page[dto.ReviewResponse], error) {
	var result dto.Page[dto.ReviewResponse]
	path := fmt.Sprintf("/api/reviews/pending?page=%d&page_size=%d", page, pageSize)
	if err := c.do(http.MethodGet, path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ApproveReview(id int64) error {
	return c.do(http.MethodPut, fmt.Sprintf("/api/reviews/%d/approve", id), nil, http.StatusOK, nil)
}

func (c *HTTPClient) DeleteReview(id int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/reviews/%d", id), nil, http.StatusOK, nil)
}

// Ratings

func (c *HTTPClient) ListRatings(movieID int64) ([]dto.RatingResponse, error) {
	var result []dto.RatingResponse
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/ratings/movie/%d", movieID), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) CreateRating(movieID int64, value float64) (*dto.RatingResponse, error) {
	var result dto.RatingResponse
	request := &dto.CreateRatingRequest{Value: value}
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/ratings/movie/%d", movieID), request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Favorites

func (c *HTTPClient) ListFavorites(userID int64, page, pageSize int) (*dto.Page[dto.FavoriteResponse], error) {
	var result dto.Page[dto.FavoriteResponse]
	path := fmt.Sprintf("/api/favorites/users/%d?page=%d&page_size=%d", userID, page, pageSize)
	if err := c.do(http.MethodGet, path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) AddFavorite(movieID int64) (*dto.FavoriteResponse, error) {
	var result dto.FavoriteResponse
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/favorites/movies/%d", movieID), nil, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) RemoveFavorite(movieID int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/favorites/movies/%d", movieID), nil, http.StatusOK, nil)
}

func (c *HTTPClient) IsFavorite(movieID, userID int64) (bool, error) {
	var result dto.FavoriteStatusResponse
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/favorites/movies/%d/users/%d", movieID, userID), nil, http.StatusOK, &result); err != nil {
		return false, err
	}
	return result.IsFavorite, nil
}

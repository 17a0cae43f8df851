package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviereview/internal/microservices/http-api/dto"
	"moviereview/internal/microservices/http-api/handler"
	"moviereview/internal/microservices/http-api/middleware"
	"moviereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- MOCK SERVICES ---

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) List(ctx context.Context, genre, sort string) ([]dto.MovieResponse, error) {
	args := m.Called(ctx, genre, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MovieResponse), args.Error(1)
}

func (m *MockMovieService) GetByID(ctx context.Context, id int64) (*dto.MovieResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieResponse), args.Error(1)
}

func (m *MockMovieService) Create(ctx context.Context, req dto.CreateMovieDTO) (*dto.MovieResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieResponse), args.Error(1)
}

func (m *MockMovieService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMovieService) ListByGenre(ctx context.Context, genre string, page, pageSize int) (*dto.PaginatedResponse[dto.MovieResponse], error) {
	args := m.Called(ctx, genre, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedResponse[dto.MovieResponse]), args.Error(1)
}

func (m *MockMovieService) Stats(ctx context.Context) (*dto.MovieStatsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieStatsResponse), args.Error(1)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Create(ctx context.Context, movieID, userID int64, req dto.CreateReviewDTO) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, movieID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) GetByID(ctx context.Context, id int64) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) ListForMovie(ctx context.Context, movieID int64, approvedOnly bool) ([]dto.ReviewResponse, error) {
	args := m.Called(ctx, movieID, approvedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) ListForUser(ctx context.Context, userID int64, page, pageSize int) (*dto.PaginatedResponse[dto.ReviewResponse], error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedResponse[dto.ReviewResponse]), args.Error(1)
}

func (m *MockReviewService) ListPending(ctx context.Context, page, pageSize int) (*dto.PaginatedResponse[dto.ReviewResponse], error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedResponse[dto.ReviewResponse]), args.Error(1)
}

func (m *MockReviewService) Approve(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockReviewService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) IsFavorite(ctx context.Context, movieID, userID int64) (bool, error) {
	args := m.Called(ctx, movieID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteService) Add(ctx context.Context, movieID, userID int64) (*dto.FavoriteResponse, error) {
	args := m.Called(ctx, movieID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FavoriteResponse), args.Error(1)
}

func (m *MockFavoriteService) Remove(ctx context.Context, movieID, userID int64) error {
	return m.Called(ctx, movieID, userID).Error(0)
}

func (m *MockFavoriteService) ListForUser(ctx context.Context, userID int64, page, pageSize int) (*dto.PaginatedResponse[dto.FavoriteResponse], error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedResponse[dto.FavoriteResponse]), args.Error(1)
}

func (m *MockFavoriteService) GetByID(ctx context.Context, id int64) (*dto.FavoriteResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FavoriteResponse), args.Error(1)
}

// --- SETUP ---

// mockAuthMiddleware authenticates every request as the given claims; nil
// claims behave like a missing token.
func mockAuthMiddleware(claims *service.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		c.Set(middleware.ClaimsKey, claims)
		c.Set(middleware.UserIDKey, claims.UserID)
		c.Next()
	}
}

var (
	alice     = &service.Claims{UserID: 1, Username: "alice"}
	moderator = &service.Claims{UserID: 2, Username: "moderator", IsModerator: true}
	admin     = &service.Claims{UserID: 3, Username: "admin", IsModerator: true, IsAdmin: true}
)

func newEngine() (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	return r, r.Group("/api")
}

func perform(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// --- MOVIES ---

func TestMovieHandler_List(t *testing.T) {
	svc := new(MockMovieService)
	r, api := newEngine()
	handler.NewMovieHandler(svc).RegisterRoutes(api, mockAuthMiddleware(nil))

	svc.On("List", mock.Anything, "Drama", "year").Return([]dto.MovieResponse{{ID: 1, Year: 2001}}, nil).Once()
	svc.On("List", mock.Anything, "", "popular").Return([]dto.MovieResponse{}, nil).Once()

	w := perform(r, http.MethodGet, "/api/movies?genre=Drama&sort=year", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"year":2001`)

	w = perform(r, http.MethodGet, "/api/movies", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestMovieHandler_Get(t *testing.T) {
	svc := new(MockMovieService)
	r, api := newEngine()
	handler.NewMovieHandler(svc).RegisterRoutes(api, mockAuthMiddleware(nil))

	svc.On("GetByID", mock.Anything, int64(1)).Return(&dto.MovieResponse{ID: 1, Title: "Inception"}, nil)
	svc.On("GetByID", mock.Anything, int64(2)).Return(nil, service.ErrMovieNotFound)

	t.Run("Found", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/movies/1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Inception", decode(t, w)["title"])
	})

	t.Run("NotFound", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/movies/2", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "movie not found", decode(t, w)["error"])
	})

	t.Run("BadID", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/api/movies/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMovieHandler_StatsAndGenre(t *testing.T) {
	svc := new(MockMovieService)
	r, api := newEngine()
	handler.NewMovieHandler(svc).RegisterRoutes(api, mockAuthMiddleware(nil))

	svc.On("Stats", mock.Anything).Return(&dto.MovieStatsResponse{MoviesCount: 5, ReviewsCount: 9}, nil)
	svc.On("ListByGenre", mock.Anything, "Drama", 2, 5).
		Return(dto.NewPaginatedResponse([]dto.MovieResponse{{ID: 6}}, 6, 2, 5), nil)

	w := perform(r, http.MethodGet, "/api/movies/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"movies_count":5,"reviews_count":9}`, w.Body.String())

	w = perform(r, http.MethodGet, "/api/movies/genre/Drama?page=2&page_size=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 2, body["total_pages"])
	assert.Len(t, body["data"], 1)
}

func TestMovieHandler_CreateRequiresAdmin(t *testing.T) {
	payload := map[string]any{"title": "Inception", "genre": "Sci-Fi", "year": 2010}

	t.Run("Admin", func(t *testing.T) {
		svc := new(MockMovieService)
		r, api := newEngine()
		handler.NewMovieHandler(svc).RegisterRoutes(api, mockAuthMiddleware(admin))

		svc.On("Create", mock.Anything, dto.CreateMovieDTO{Title: "Inception", Genre: "Sci-Fi", Year: 2010}).
			Return(&dto.MovieResponse{ID: 1, Title: "Inception", Genre: "Sci-Fi", Year: 2010}, nil)

		w := perform(r, http.MethodPost, "/api/movies", payload)
		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("User", func(t *testing.T) {
		svc := new(MockMovieService)
		r, api := newEngine()
		handler.NewMovieHandler(svc).RegisterRoutes(api, mockAuthMiddleware(alice))

		w := perform(r, http.MethodPost, "/api/movies", payload)
		assert.Equal(t, http.StatusForbidden, w.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := new(MockMovieService)
		r, api := newEngine()
		handler.NewMovieHandler(svc).RegisterRoutes(api, mockAuthMiddleware(admin))

		w := perform(r, http.MethodPost, "/api/movies", map[string]any{"title": "No genre"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMovieHandler_Delete(t *testing.T) {
	svc := new(MockMovieService)
	r, api := newEngine()
	handler.NewMovieHandler(svc).RegisterRoutes(api, mockAuthMiddleware(admin))

	svc.On("Delete", mock.Anything, int64(1)).Return(nil)
	svc.On("Delete", mock.Anything, int64(2)).Return(service.ErrMovieNotFound)
	svc.On("Delete", mock.Anything, int64(3)).Return(&service.StorageError{Op: "delete movie", Err: errors.New("boom")})

	w := perform(r, http.MethodDelete, "/api/movies/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"deleted","movie_id":1}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodDelete, "/api/movies/2", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, perform(r, http.MethodDelete, "/api/movies/3", nil).Code)
}

// --- REVIEWS ---

func TestReviewHandler_CreateUsesCaller(t *testing.T) {
	svc := new(MockReviewService)
	r, api := newEngine()
	handler.NewReviewHandler(svc).RegisterRoutes(api, mockAuthMiddleware(alice))

	svc.On("Create", mock.Anything, int64(1), int64(1), dto.CreateReviewDTO{Text: "great"}).
		Return(&dto.ReviewResponse{ID: 1, MovieID: 1, UserID: 1, Text: "great"}, nil)

	w := perform(r, http.MethodPost, "/api/reviews/movie/1", map[string]any{"text": "great"})
	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["approved"])
	assert.Nil(t, body["rating"])

	w = perform(r, http.MethodPost, "/api/reviews/movie/1", map[string]any{"text": "x", "rating": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewHandler_ListForMovie(t *testing.T) {
	svc := new(MockReviewService)
	r, api := newEngine()
	handler.NewReviewHandler(svc).RegisterRoutes(api, mockAuthMiddleware(nil))

	svc.On("ListForMovie", mock.Anything, int64(1), true).Return([]dto.ReviewResponse{{ID: 1, Approved: true}}, nil)
	svc.On("ListForMovie", mock.Anything, int64(1), false).Return([]dto.ReviewResponse{{ID: 1}, {ID: 2}}, nil)
	svc.On("ListForMovie", mock.Anything, int64(9), true).Return(nil, service.ErrMovieNotFound)

	w := perform(r, http.MethodGet, "/api/reviews/movie/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(r, http.MethodGet, "/api/reviews/movie/1?approved_only=false", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodGet, "/api/reviews/movie/9", nil).Code)
	assert.Equal(t, http.StatusBadRequest, perform(r, http.MethodGet, "/api/reviews/movie/1?approved_only=maybe", nil).Code)
}

func TestReviewHandler_ApproveRequiresModerator(t *testing.T) {
	t.Run("Moderator", func(t *testing.T) {
		svc := new(MockReviewService)
		r, api := newEngine()
		handler.NewReviewHandler(svc).RegisterRoutes(api, mockAuthMiddleware(moderator))
		svc.On("Approve", mock.Anything, int64(4)).Return(nil)
		svc.On("Approve", mock.Anything, int64(5)).Return(service.ErrReviewNotFound)

		w := perform(r, http.MethodPut, "/api/reviews/4/approve", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"approved","review_id":4}`, w.Body.String())

		assert.Equal(t, http.StatusNotFound, perform(r, http.MethodPut, "/api/reviews/5/approve", nil).Code)
	})

	t.Run("User", func(t *testing.T) {
		svc := new(MockReviewService)
		r, api := newEngine()
		handler.NewReviewHandler(svc).RegisterRoutes(api, mockAuthMiddleware(alice))

		assert.Equal(t, http.StatusForbidden, perform(r, http.MethodPut, "/api/reviews/4/approve", nil).Code)
		assert.Equal(t, http.StatusForbidden, perform(r, http.MethodGet, "/api/reviews/pending", nil).Code)
	})
}

func TestReviewHandler_DeleteOwnerOrModerator(t *testing.T) {
	review := &dto.ReviewResponse{ID: 7, UserID: alice.UserID}

	cases := []struct {
		name   string
		claims *service.Claims
		want   int
	}{
		{"Owner", alice, http.StatusOK},
		{"Moderator", moderator, http.StatusOK},
		{"Stranger", &service.Claims{UserID: 42}, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockReviewService)
			r, api := newEngine()
			handler.NewReviewHandler(svc).RegisterRoutes(api, mockAuthMiddleware(tc.claims))
			svc.On("GetByID", mock.Anything, int64(7)).Return(review, nil)
			svc.On("Delete", mock.Anything, int64(7)).Return(nil)

			w := perform(r, http.MethodDelete, "/api/reviews/7", nil)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

// --- FAVORITES ---

func TestFavoriteHandler_AddTwice(t *testing.T) {
	svc := new(MockFavoriteService)
	r, api := newEngine()
	handler.NewFavoriteHandler(svc).RegisterRoutes(api, mockAuthMiddleware(alice))

	svc.On("Add", mock.Anything, int64(1), int64(1)).Return(&dto.FavoriteResponse{ID: 1, MovieID: 1, UserID: 1}, nil).Once()
	svc.On("Add", mock.Anything, int64(1), int64(1)).Return(nil, service.ErrAlreadyFavorite).Once()

	assert.Equal(t, http.StatusCreated, perform(r, http.MethodPost, "/api/favorites/movies/1", nil).Code)

	w := perform(r, http.MethodPost, "/api/favorites/movies/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "already in favorites")
}

func TestFavoriteHandler_CheckAndRemove(t *testing.T) {
	svc := new(MockFavoriteService)
	r, api := newEngine()
	handler.NewFavoriteHandler(svc).RegisterRoutes(api, mockAuthMiddleware(alice))

	svc.On("IsFavorite", mock.Anything, int64(1), int64(1)).Return(true, nil)
	svc.On("Remove", mock.Anything, int64(1), int64(1)).Return(nil).Once()
	svc.On("Remove", mock.Anything, int64(1), int64(1)).Return(service.ErrFavoriteNotFound).Once()

	w := perform(r, http.MethodGet, "/api/favorites/movies/1/users/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"is_favorite":true}`, w.Body.String())

	w = perform(r, http.MethodDelete, "/api/favorites/movies/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"removed","movie_id":1}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodDelete, "/api/favorites/movies/1", nil).Code)
}

func TestFavoriteHandler_AddRequiresAuth(t *testing.T) {
	svc := new(MockFavoriteService)
	r, api := newEngine()
	handler.NewFavoriteHandler(svc).RegisterRoutes(api, mockAuthMiddleware(nil))

	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodPost, "/api/favorites/movies/1", nil).Code)
}

// --- HEALTH ---

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ok := gin.New()
	handler.NewHealthHandler(func(context.Context) error { return nil }).RegisterRoutes(ok)
	w := perform(ok, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	down := gin.New()
	handler.NewHealthHandler(func(context.Context) error { return errors.New("db down") }).RegisterRoutes(down)
	assert.Equal(t, http.StatusServiceUnavailable, perform(down, http.MethodGet, "/health", nil).Code)
}

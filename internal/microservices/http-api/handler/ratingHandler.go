package handler

import (
	"net/http"

	"moviereview/internal/microservices/http-api/dto"
	"moviereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers rating-related routes
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	ratings := router.Group("/ratings")
	{
		ratings.GET("/movie/:movie_id", h.ListForMovie) // All ratings for a movie
		ratings.GET("/:id", h.Get)

		ratings.POST("/movie/:movie_id", requireAuth, h.Create) // Rate as the caller
	}
}

// Create records a rating for a movie
// POST /api/ratings/movie/:movie_id
func (h *RatingHandler) Create(c *gin.Context) {
	movieID, ok := parseID(c, "movie_id", "movie")
	if !ok {
		return
	}

	// Get user ID from the token claims
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.Create(c.Request.Context(), movieID, userID, *req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}

// ListForMovie retrieves all ratings for a movie
// GET /api/ratings/movie/:movie_id
func (h *RatingHandler) ListForMovie(c *gin.Context) {
	movieID, ok := parseID(c, "movie_id", "movie")
	if !ok {
		return
	}

	ratings, err := h.ratingService.ListForMovie(c.Request.Context(), movieID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// GET /api/ratings/:id
func (h *RatingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "rating")
	if !ok {
		return
	}

	rating, err := h.ratingService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

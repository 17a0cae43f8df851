package handler

import (
	"net/http"
	"strconv"

	"moviereview/internal/microservices/http-api/dto"
	"moviereview/internal/microservices/http-api/middleware"
	"moviereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers review routes
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	reviews := router.Group("/reviews")
	{
		reviews.GET("/movie/:movie_id", h.ListForMovie)
		reviews.GET("/user/:user_id", h.ListForUser)
		reviews.GET("/:id", h.Get)

		reviews.POST("/movie/:movie_id", requireAuth, h.Create)
		reviews.DELETE("/:id", requireAuth, h.Delete)

		// moderation
		reviews.GET("/pending", requireAuth, middleware.RequireModerator(), h.ListPending)
		reviews.PUT("/:id/approve", requireAuth, middleware.RequireModerator(), h.Approve)
	}
}

// Create posts a review as the caller; it stays hidden until approved
// POST /api/reviews/movie/:movie_id
func (h *ReviewHandler) Create(c *gin.Context) {
	movieID, ok := parseID(c, "movie_id", "movie")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), movieID, userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListForMovie returns the movie's reviews, approved only unless asked otherwise
// GET /api/reviews/movie/:movie_id?approved_only=true
func (h *ReviewHandler) ListForMovie(c *gin.Context) {
	movieID, ok := parseID(c, "movie_id", "movie")
	if !ok {
		return
	}

	approvedOnly, err := strconv.ParseBool(c.DefaultQuery("approved_only", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "approved_only must be a boolean"})
		return
	}

	reviews, err := h.reviewService.ListForMovie(c.Request.Context(), movieID, approvedOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// GET /api/reviews/user/:user_id?page=1&page_size=20
func (h *ReviewHandler) ListForUser(c *gin.Context) {
	userID, ok := parseID(c, "user_id", "user")
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	resp, err := h.reviewService.ListForUser(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPending is the moderation queue
// GET /api/reviews/pending?page=1&page_size=20
func (h *ReviewHandler) ListPending(c *gin.Context) {
	page, pageSize := pageParams(c)

	resp, err := h.reviewService.ListPending(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GET /api/reviews/:id
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}

	review, err := h.reviewService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// PUT /api/reviews/:id/approve
func (h *ReviewHandler) Approve(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}

	if err := h.reviewService.Approve(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "approved", ReviewID: id})
}

// Delete is open to the author and to moderators
// DELETE /api/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "review")
	if !ok {
		return
	}
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx := c.Request.Context()
	review, err := h.reviewService.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if review.UserID != claims.UserID && !claims.CanModerate() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	if err := h.reviewService.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "deleted", ReviewID: id})
}

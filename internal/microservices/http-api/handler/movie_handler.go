package handler

import (
	"net/http"
	"strings"

	"moviereview/internal/microservices/http-api/dto"
	"moviereview/internal/microservices/http-api/middleware"
	"moviereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	movieService service.MovieService
}

func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// RegisterRoutes registers movie routes; writes are admin only
func (h *MovieHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	movies := router.Group("/movies")
	{
		movies.GET("", h.List)
		movies.GET("/stats", h.Stats)
		movies.GET("/genre/:genre", h.ListByGenre)
		movies.GET("/:id", h.Get)

		movies.POST("", requireAuth, middleware.RequireAdmin(), h.Create)
		movies.DELETE("/:id", requireAuth, middleware.RequireAdmin(), h.Delete)
	}
}

// List returns all movies
// GET /api/movies?genre=Drama&sort=popular|title|year
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.movieService.List(c.Request.Context(), c.Query("genre"), c.DefaultQuery("sort", "popular"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, movies)
}

// GET /api/movies/stats
func (h *MovieHandler) Stats(c *gin.Context) {
	stats, err := h.movieService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GET /api/movies/genre/:genre?page=1&page_size=20
func (h *MovieHandler) ListByGenre(c *gin.Context) {
	genre := strings.TrimSpace(c.Param("genre"))
	page, pageSize := pageParams(c)

	resp, err := h.movieService.ListByGenre(c.Request.Context(), genre, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GET /api/movies/:id
func (h *MovieHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "movie")
	if !ok {
		return
	}

	movie, err := h.movieService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, movie)
}

// POST /api/movies
func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.CreateMovieDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.movieService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, movie)
}

// Delete removes the movie with its reviews, ratings and favorites
// DELETE /api/movies/:id
func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "movie")
	if !ok {
		return
	}

	if err := h.movieService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "deleted", MovieID: id})
}

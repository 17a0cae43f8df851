package handler

import (
	"net/http"

	"moviereview/internal/microservices/http-api/dto"
	"moviereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	favorites := router.Group("/favorites")
	{
		favorites.GET("/users/:user_id", h.ListForUser)
		favorites.GET("/movies/:movie_id/users/:user_id", h.Check)
		favorites.GET("/:id", h.Get)

		// the caller's own list
		favorites.POST("/movies/:movie_id", requireAuth, h.Add)
		favorites.DELETE("/movies/:movie_id", requireAuth, h.Remove)
	}
}

// GET /api/favorites/users/:user_id?page=1&page_size=20
func (h *FavoriteHandler) ListForUser(c *gin.Context) {
	userID, ok := parseID(c, "user_id", "user")
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	resp, err := h.favoriteService.ListForUser(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GET /api/favorites/movies/:movie_id/users/:user_id
func (h *FavoriteHandler) Check(c *gin.Context) {
	movieID, ok := parseID(c, "movie_id", "movie")
	if !ok {
		return
	}
	userID, ok := parseID(c, "user_id", "user")
	if !ok {
		return
	}

	isFavorite, err := h.favoriteService.IsFavorite(c.Request.Context(), movieID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FavoriteStatusResponse{IsFavorite: isFavorite})
}

// Add favorites a movie; a second add answers 400
// POST /api/favorites/movies/:movie_id
func (h *FavoriteHandler) Add(c *gin.Context) {
	movieID, ok := parseID(c, "movie_id", "movie")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fav, err := h.favoriteService.Add(c.Request.Context(), movieID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fav)
}

// DELETE /api/favorites/movies/:movie_id
func (h *FavoriteHandler) Remove(c *gin.Context) {
	movieID, ok := parseID(c, "movie_id", "movie")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), movieID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "removed", MovieID: movieID})
}

// GET /api/favorites/:id
func (h *FavoriteHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "favorite")
	if !ok {
		return
	}

	fav, err := h.favoriteService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, fav)
}

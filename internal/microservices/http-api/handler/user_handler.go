package handler

import (
	"net/http"

	"moviereview/internal/microservices/http-api/dto"
	"moviereview/internal/microservices/http-api/middleware"
	"moviereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authService service.AuthService
	userService service.UserService
}

func NewUserHandler(authService service.AuthService, userService service.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

// RegisterRoutes registers user routes. limit guards the credential endpoints.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth, limit gin.HandlerFunc) {
	users := router.Group("/users")
	{
		users.POST("/register", limit, h.Register)
		users.POST("/login", limit, h.Login)
		users.GET("/me", requireAuth, h.Me)
		users.GET("", requireAuth, middleware.RequireAdmin(), h.List)
		users.GET("/:id", h.Get)
		users.PUT("/:id", requireAuth, middleware.RequireSelfOrAdmin("id"), h.Update)
		users.DELETE("/:id", requireAuth, middleware.RequireSelfOrAdmin("id"), h.Delete)
	}
}

// Register creates an account
// POST /api/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login returns the user record with an access token
// POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated caller
// GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// List pages through all users (admin only)
// GET /api/users?page=1&page_size=20
func (h *UserHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)

	resp, err := h.userService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update applies a partial update
// PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete removes the user with everything it owns
// DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "deleted", UserID: id})
}

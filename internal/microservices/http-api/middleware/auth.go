package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"moviereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ClaimsKey = "claims"
	UserIDKey = "userID"
)

// AuthMiddleware is a Gin middleware for JWT authentication of API requests
// It checks for the presence and validity of a JWT token in the Authorization header
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// Set user info in context for handlers to use
		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.UserID)

		c.Next()
	}
}

// CurrentClaims returns the claims stored by AuthMiddleware.
func CurrentClaims(c *gin.Context) (*service.Claims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*service.Claims)
	return claims, ok
}

// RequireModerator lets moderators and admins through.
func RequireModerator() gin.HandlerFunc {
	return requireClaims(func(c *gin.Context, claims *service.Claims) bool {
		return claims.CanModerate()
	}, "moderator")
}

// RequireAdmin is a convenience function for requiring admin role
func RequireAdmin() gin.HandlerFunc {
	return requireClaims(func(c *gin.Context, claims *service.Claims) bool {
		return claims.IsAdmin
	}, "admin")
}

// RequireSelfOrAdmin allows the request when the path parameter names the
// caller's own id, or when the caller is an admin.
func RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return requireClaims(func(c *gin.Context, claims *service.Claims) bool {
		if claims.IsAdmin {
			return true
		}
		id, err := strconv.ParseInt(c.Param(param), 10, 64)
		return err == nil && id == claims.UserID
	}, "self or admin")
}

func requireClaims(allowed func(*gin.Context, *service.Claims) bool, required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		if !allowed(c, claims) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Insufficient permissions",
				"required": required,
			})
			return
		}

		c.Next()
	}
}

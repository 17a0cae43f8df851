package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"moviereview/internal/microservices/http-api/dto"
	"moviereview/internal/microservices/http-api/middleware"
	"moviereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// statusFor maps the service error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"error", err,
			"path", c.FullPath(),
			"request_id", c.GetString(middleware.RequestIDKey),
		)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseID reads a positive int64 path parameter, answering 400 on failure.
func parseID(c *gin.Context, param, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID"})
		return 0, false
	}
	return id, true
}

// pageParams reads ?page and ?page_size; bad values fall back to the defaults.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(dto.DefaultPage)))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(dto.DefaultPageSize)))
	return dto.NormalizePage(page, pageSize)
}

// currentUserID returns the authenticated caller, answering 401 when absent.
func currentUserID(c *gin.Context) (int64, bool) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	return claims.UserID, true
}

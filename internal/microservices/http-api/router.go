package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"moviereview/database"
	"moviereview/internal/config"
	"moviereview/internal/microservices/http-api/handler"
	"moviereview/internal/microservices/http-api/middleware"
	"moviereview/internal/microservices/http-api/repository"
	"moviereview/internal/microservices/http-api/service"
	"moviereview/internal/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies are built once in main and shared by every request.
type Dependencies struct {
	DB      *gorm.DB
	Config  *config.Config
	Limiter ratelimit.Limiter
	Logger  *slog.Logger
}

// NewRouter wires repositories, services and handlers under /api.
func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// ClientIP keys the rate limiter, so forwarded headers count only from known proxies
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Error("trusted_proxies_rejected", "error", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLog(logger))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	// Repositories
	userRepo := repository.NewUserRepository(deps.DB)
	movieRepo := repository.NewMovieRepository(deps.DB)
	reviewRepo := repository.NewReviewRepository(deps.DB)
	ratingRepo := repository.NewRatingRepository(deps.DB)
	favoriteRepo := repository.NewFavoriteRepository(deps.DB)

	// Services
	authService := service.NewAuthService(userRepo, cfg)
	userService := service.NewUserService(userRepo, cfg.BcryptCost)
	movieService := service.NewMovieService(movieRepo, reviewRepo)
	reviewService := service.NewReviewService(reviewRepo, movieRepo, userRepo)
	ratingService := service.NewRatingService(ratingRepo, movieRepo, userRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, movieRepo, userRepo)

	requireAuth := middleware.AuthMiddleware(authService)
	limit := middleware.RateLimit(deps.Limiter)

	handler.NewHealthHandler(func(ctx context.Context) error {
		return database.Ping(ctx, deps.DB)
	}).RegisterRoutes(r)

	api := r.Group("/api")
	handler.NewUserHandler(authService, userService).RegisterRoutes(api, requireAuth, limit)
	handler.NewMovieHandler(movieService).RegisterRoutes(api, requireAuth)
	handler.NewReviewHandler(reviewService).RegisterRoutes(api, requireAuth)
	handler.NewRatingHandler(ratingService).RegisterRoutes(api, requireAuth)
	handler.NewFavoriteHandler(favoriteService).RegisterRoutes(api, requireAuth)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		// wildcard origins cannot be combined with credentials
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

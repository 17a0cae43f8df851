package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/fatih/color"

	"moviereview/database"
	"moviereview/internal/config"
	"moviereview/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("database_connect_failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	summary, err := database.Seed(ctx, db, cfg.BcryptCost)
	if err != nil {
		color.Red("✗ Seeding failed: %v", err)
		os.Exit(1)
	}
	if summary.Skipped {
		color.Yellow("Users already exist, nothing to seed")
		return
	}

	color.Green("✓ Database seeded")
	color.Cyan("  Users:     %d", summary.Users)
	color.Cyan("  Movies:    %d", summary.Movies)
	color.Cyan("  Reviews:   %d", summary.Reviews)
	color.Cyan("  Ratings:   %d", summary.Ratings)
	color.Cyan("  Favorites: %d", summary.Favorites)
	color.White("\nTest credentials:")
	color.White("  Regular user: john_doe / password123")
	color.White("  Moderator:    moderator / modpass123")
	color.White("  Admin:        admin / adminpass123")
}

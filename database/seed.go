package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"moviereview/internal/microservices/http-api/models"
	"moviereview/internal/middleware/auth"
)

// SeedSummary counts the rows Seed inserted.
type SeedSummary struct {
	Users     int
	Movies    int
	Reviews   int
	Ratings   int
	Favorites int
	Skipped   bool
}

type seedUser struct {
	email, username, password string
	moderator, admin          bool
}

var seedUsers = []seedUser{
	{"user1@example.com", "john_doe", "password123", false, false},
	{"moderator@example.com", "moderator", "modpass123", true, false},
	{"admin@example.com", "admin", "adminpass123", true, true},
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func seedMovies() []models.Movie {
	return []models.Movie{
		{
			Title:       "The Matrix",
			Description: strPtr("A hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers."),
			Genre:       "Sci-Fi",
			Year:        1999,
			PosterURL:   strPtr("https://via.placeholder.com/300x450?text=The+Matrix"),
		},
		{
			Title:       "Inception",
			Description: strPtr("A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea."),
			Genre:       "Sci-Fi",
			Year:        2010,
			PosterURL:   strPtr("https://via.placeholder.com/300x450?text=Inception"),
		},
		{
			Title:       "The Dark Knight",
			Description: strPtr("When the menace known as The Joker wreaks havoc, Batman must accept one of the greatest psychological and physical tests."),
			Genre:       "Action",
			Year:        2008,
			PosterURL:   strPtr("https://via.placeholder.com/300x450?text=The+Dark+Knight"),
		},
		{
			Title:       "Forrest Gump",
			Description: strPtr("The presidencies of Kennedy and Johnson unfold through the perspective of an Alabama man with an IQ of 75."),
			Genre:       "Drama",
			Year:        1994,
			PosterURL:   strPtr("https://via.placeholder.com/300x450?text=Forrest+Gump"),
		},
		{
			Title:       "Pulp Fiction",
			Description: strPtr("The lives of two mob hitmen, a boxer, a gangster and his wife intertwine in four tales of violence and redemption."),
			Genre:       "Crime",
			Year:        1994,
			PosterURL:   strPtr("https://via.placeholder.com/300x450?text=Pulp+Fiction"),
		},
	}
}

// Seed fills an empty database with sample users, movies, reviews, ratings
// and favorites in one transaction. A database that already has users is
// left untouched.
func Seed(ctx context.Context, db *gorm.DB, bcryptCost int) (*SeedSummary, error) {
	summary := &SeedSummary{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.User{}).Count(&existing).Error; err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		if existing > 0 {
			summary.Skipped = true
			return nil
		}

		users := make([]models.User, 0, len(seedUsers))
		for _, su := range seedUsers {
			hash, err := auth.HashPasswordWithCost(su.password, bcryptCost)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", su.username, err)
			}
			users = append(users, models.User{
				Email:       su.email,
				Username:    su.username,
				Password:    hash,
				IsUser:      true,
				IsModerator: su.moderator,
				IsAdmin:     su.admin,
			})
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("create users: %w", err)
		}

		movies := seedMovies()
		if err := tx.Create(&movies).Error; err != nil {
			return fmt.Errorf("create movies: %w", err)
		}

		john, mod := users[0].ID, users[1].ID
		reviews := []models.Review{
			{MovieID: movies[0].ID, UserID: john, Text: "Amazing sci-fi movie! The action sequences are incredible.", Rating: intPtr(5), Approved: true},
			{MovieID: movies[0].ID, UserID: mod, Text: "Groundbreaking for its time. Still holds up today!", Rating: intPtr(5), Approved: true},
			{MovieID: movies[1].ID, UserID: john, Text: "Complex and mind-bending. Need to watch twice to understand everything.", Rating: intPtr(4), Approved: true},
			{MovieID: movies[2].ID, UserID: mod, Text: "Best Batman movie ever made!", Rating: intPtr(5), Approved: true},
			{MovieID: movies[3].ID, UserID: john, Text: "Heartwarming and inspiring story.", Rating: intPtr(4), Approved: true},
			{MovieID: movies[4].ID, UserID: john, Text: "Waiting in the moderation queue.", Approved: false},
		}
		if err := tx.Create(&reviews).Error; err != nil {
			return fmt.Errorf("create reviews: %w", err)
		}

		ratings := []models.Rating{
			{MovieID: movies[0].ID, UserID: john, Value: 5.0},
			{MovieID: movies[0].ID, UserID: mod, Value: 4.8},
			{MovieID: movies[1].ID, UserID: john, Value: 4.5},
			{MovieID: movies[2].ID, UserID: mod, Value: 5.0},
			{MovieID: movies[3].ID, UserID: john, Value: 4.7},
			{MovieID: movies[4].ID, UserID: mod, Value: 4.6},
		}
		if err := tx.Create(&ratings).Error; err != nil {
			return fmt.Errorf("create ratings: %w", err)
		}

		favorites := []models.Favorite{
			{MovieID: movies[0].ID, UserID: john},
			{MovieID: movies[1].ID, UserID: john},
			{MovieID: movies[2].ID, UserID: mod},
			{MovieID: movies[0].ID, UserID: mod},
		}
		if err := tx.Create(&favorites).Error; err != nil {
			return fmt.Errorf("create favorites: %w", err)
		}

		summary.Users = len(users)
		summary.Movies = len(movies)
		summary.Reviews = len(reviews)
		summary.Ratings = len(ratings)
		summary.Favorites = len(favorites)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

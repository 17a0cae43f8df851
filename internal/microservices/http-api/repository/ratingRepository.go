package repository

import (
	"context"
	"fmt"

	"moviereview/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	GetByID(ctx context.Context, id int64) (*models.Rating, error)
	GetByMovie(ctx context.Context, movieID int64) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating
func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		return fmt.Errorf("create rating: %w", err)
	}
	return nil
}

func (r *ratingRepository) GetByID(ctx context.Context, id int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByMovie retrieves all ratings for a movie in submission order
func (r *ratingRepository) GetByMovie(ctx context.Context, movieID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("id ASC").
		Find(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("list movie ratings: %w", err)
	}
	return ratings, nil
}

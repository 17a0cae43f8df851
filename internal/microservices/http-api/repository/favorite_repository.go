package repository

import (
	"context"
	"fmt"

	"moviereview/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Exists(ctx context.Context, movieID, userID int64) (bool, error)
	Add(ctx context.Context, movieID, userID int64) (*models.Favorite, bool, error)
	Remove(ctx context.Context, movieID, userID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]models.Favorite, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Exists(ctx context.Context, movieID, userID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("movie_id = ? AND user_id = ?", movieID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add inserts the pair unless it is already present. created is false, with
// the existing row, when nothing was inserted.
func (r *favoriteRepository) Add(ctx context.Context, movieID, userID int64) (*models.Favorite, bool, error) {
	var (
		fav     models.Favorite
		created bool
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("movie_id = ? AND user_id = ?", movieID, userID).First(&fav).Error
		if err == nil {
			return nil
		}
		if !IsNotFound(err) {
			return err
		}

		fav = models.Favorite{MovieID: movieID, UserID: userID}
		if err := tx.Create(&fav).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("add favorite: %w", err)
	}
	return &fav, created, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, movieID, userID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("movie_id = ? AND user_id = ?", movieID, userID).
		Delete(&models.Favorite{})

	if result.Error != nil {
		return false, fmt.Errorf("remove favorite: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ListByUser returns the user's favorites with the movie loaded, newest first.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64, page, pageSize int) ([]models.Favorite, int64, error) {
	var favorites []models.Favorite
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset(offset(page, pageSize)).
		Find(&favorites).Error; err != nil {
		return nil, 0, fmt.Errorf("list favorites: %w", err)
	}

	return favorites, total, nil
}

func (r *favoriteRepository) GetByID(ctx context.Context, id int64) (*models.Favorite, error) {
	var fav models.Favorite
	if err := r.db.WithContext(ctx).First(&fav, id).Error; err != nil {
		return nil, err
	}
	return &fav, nil
}

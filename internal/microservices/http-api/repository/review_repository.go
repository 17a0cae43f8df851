package repository

import (
	"context"
	"fmt"

	"moviereview/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	GetByMovie(ctx context.Context, movieID int64, approvedOnly bool) ([]models.Review, error)
	GetByUser(ctx context.Context, userID int64, page, pageSize int) ([]models.Review, int64, error)
	ListPending(ctx context.Context, page, pageSize int) ([]models.Review, int64, error)
	Approve(ctx context.Context, id int64) (*models.Review, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create always stores the review unapproved.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	review.Approved = false
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByMovie(ctx context.Context, movieID int64, approvedOnly bool) ([]models.Review, error) {
	var reviews []models.Review
	q := r.db.WithContext(ctx).Where("movie_id = ?", movieID)
	if approvedOnly {
		q = q.Where("approved = ?", true)
	}
	if err := q.Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list movie reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) GetByUser(ctx context.Context, userID int64, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Review{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset(offset(page, pageSize)).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// ListPending is the moderation queue, oldest first.
func (r *reviewRepository) ListPending(ctx context.Context, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Review{}).Where("approved = ?", false).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Movie").
		Where("approved = ?", false).
		Order("created_at ASC, id ASC").
		Limit(pageSize).
		Offset(offset(page, pageSize)).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// Approve flips approved to true. Approving an approved review changes nothing.
func (r *reviewRepository) Approve(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, id).Error; err != nil {
			return err
		}
		if review.Approved {
			return nil
		}
		return tx.Model(&review).Update("approved", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete review: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Count covers approved and unapproved reviews.
func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).Count(&count).Error
	return count, err
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"moviereview/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// Movie listing orders. There is no popularity metric, so popular means newest first.
const (
	SortPopular = "popular"
	SortTitle   = "title"
	SortYear    = "year"
)

var movieOrders = map[string]string{
	SortPopular: "id DESC",
	SortTitle:   "title ASC, id ASC",
	SortYear:    "year DESC, id DESC",
}

// MovieFilter narrows GetAll. An empty Genre or "all" disables the filter.
type MovieFilter struct {
	Genre string
	Sort  string
}

type MovieRepository interface {
	GetAll(ctx context.Context, filter MovieFilter) ([]models.Movie, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id int64) (bool, error)
	GetByGenre(ctx context.Context, genre string, page, pageSize int) ([]models.Movie, int64, error)
	Count(ctx context.Context) (int64, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// NormalizeSort maps unknown sort keys to SortPopular.
func NormalizeSort(sort string) string {
	sort = strings.ToLower(strings.TrimSpace(sort))
	if _, ok := movieOrders[sort]; ok {
		return sort
	}
	return SortPopular
}

func (r *movieRepository) GetAll(ctx context.Context, filter MovieFilter) ([]models.Movie, error) {
	var list []models.Movie
	q := r.db.WithContext(ctx)

	genre := strings.TrimSpace(filter.Genre)
	if genre != "" && !strings.EqualFold(genre, "all") {
		q = q.Where("genre = ?", genre)
	}

	if err := q.Order(movieOrders[NormalizeSort(filter.Sort)]).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return list, nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *movieRepository) Create(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	// GORM will populate m.ID and m.CreatedAt
	return nil
}

// Delete removes the movie with its reviews, ratings and favorites. Any failure
// rolls the whole sequence back.
func (r *movieRepository) Delete(ctx context.Context, id int64) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []any{&models.Review{}, &models.Rating{}, &models.Favorite{}} {
			if err := tx.Where("movie_id = ?", id).Delete(child).Error; err != nil {
				return fmt.Errorf("delete %T: %w", child, err)
			}
		}
		result := tx.Delete(&models.Movie{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete movie: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errNoRows
		}
		return nil
	})
	if errors.Is(err, errNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *movieRepository) GetByGenre(ctx context.Context, genre string, page, pageSize int) ([]models.Movie, int64, error) {
	var list []models.Movie
	var total int64

	// Count total records
	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Where("genre = ?", genre).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("genre = ?", genre).
		Order("id ASC").
		Limit(pageSize).
		Offset(offset(page, pageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *movieRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&count).Error
	return count, err
}

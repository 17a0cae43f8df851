package service

import (
	"context"
	"fmt"

	"moviereview/internal/microservices/http-api/dto"
	"moviereview/internal/microservices/http-api/models"
	"moviereview/internal/microservices/http-api/repository"
)

type RatingService interface {
	Create(ctx context.Context, movieID, userID int64, value float64) (*dto.RatingResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.RatingResponse, error)
	ListForMovie(ctx context.Context, movieID int64) ([]dto.RatingResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	movieRepo  repository.MovieRepository
	userRepo   repository.UserRepository
}

func NewRatingService(
	ratingRepo repository.RatingRepository,
	movieRepo repository.MovieRepository,
	userRepo repository.UserRepository,
) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		movieRepo:  movieRepo,
		userRepo:   userRepo,
	}
}

// Create records one more score; earlier ratings by the same user are kept.
func (s *ratingService) Create(ctx context.Context, movieID, userID int64, value float64) (*dto.RatingResponse, error) {
	if value < 0 || value > 5 {
		return nil, fmt.Errorf("%w: rating value must be between 0 and 5", ErrValidation)
	}
	if err := s.ensureMovie(ctx, movieID); err != nil {
		return nil, err
	}
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	rating := &models.Rating{MovieID: movieID, UserID: userID, Value: value}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, storageErr("create rating", err)
	}
	return dto.FromModelToRatingResponse(rating), nil
}

func (s *ratingService) GetByID(ctx context.Context, id int64) (*dto.RatingResponse, error) {
	rating, err := s.ratingRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrRatingNotFound
		}
		return nil, storageErr("get rating", err)
	}
	return dto.FromModelToRatingResponse(rating), nil
}

func (s *ratingService) ListForMovie(ctx context.Context, movieID int64) ([]dto.RatingResponse, error) {
	if err := s.ensureMovie(ctx, movieID); err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepo.GetByMovie(ctx, movieID)
	if err != nil {
		return nil, storageErr("list movie ratings", err)
	}
	return dto.FromModelsToRatingResponses(ratings), nil
}

func (s *ratingService) ensureMovie(ctx context.Context, movieID int64) error {
	ok, err := s.movieRepo.Exists(ctx, movieID)
	if err != nil {
		return storageErr("check movie", err)
	}
	if !ok {
		return ErrMovieNotFound
	}
	return nil
}

package service

import (
	"context"

	"moviereview/internal/microservices/http-api/dto"
	"moviereview/internal/microservices/http-api/models"
	"moviereview/internal/microservices/http-api/repository"
)

type ReviewService interface {
	Create(ctx context.Context, movieID, userID int64, req dto.CreateReviewDTO) (*dto.ReviewResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ReviewResponse, error)
	ListForMovie(ctx context.Context, movieID int64, approvedOnly bool) ([]dto.ReviewResponse, error)
	ListForUser(ctx context.Context, userID int64, page, pageSize int) (*dto.PaginatedResponse[dto.ReviewResponse], error)
	ListPending(ctx context.Context, page, pageSize int) (*dto.PaginatedResponse[dto.ReviewResponse], error)
	Approve(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	movieRepo  repository.MovieRepository
	userRepo   repository.UserRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	movieRepo repository.MovieRepository,
	userRepo repository.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		movieRepo:  movieRepo,
		userRepo:   userRepo,
	}
}

// Create stores a new, unapproved review.
func (s *reviewService) Create(ctx context.Context, movieID, userID int64, req dto.CreateReviewDTO) (*dto.ReviewResponse, error) {
	if err := s.ensureMovie(ctx, movieID); err != nil {
		return nil, err
	}
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	review := &models.Review{
		MovieID: movieID,
		UserID:  userID,
		Text:    req.Text,
		Rating:  req.Rating,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, storageErr("create review", err)
	}
	return dto.FromModelToReviewResponse(review), nil
}

func (s *reviewService) GetByID(ctx context.Context, id int64) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, storageErr("get review", err)
	}
	return dto.FromModelToReviewResponse(review), nil
}

func (s *reviewService) ListForMovie(ctx context.Context, movieID int64, approvedOnly bool) ([]dto.ReviewResponse, error) {
	if err := s.ensureMovie(ctx, movieID); err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.GetByMovie(ctx, movieID, approvedOnly)
	if err != nil {
		return nil, storageErr("list movie reviews", err)
	}
	return dto.FromModelsToReviewResponses(reviews), nil
}

func (s *reviewService) ListForUser(ctx context.Context, userID int64, page, pageSize int) (*dto.PaginatedResponse[dto.ReviewResponse], error) {
	page, pageSize = dto.NormalizePage(page, pageSize)
	reviews, total, err := s.reviewRepo.GetByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, storageErr("list user reviews", err)
	}
	return dto.NewPaginatedResponse(dto.FromModelsToReviewResponses(reviews), int(total), page, pageSize), nil
}

func (s *reviewService) ListPending(ctx context.Context, page, pageSize int) (*dto.PaginatedResponse[dto.ReviewResponse], error) {
	page, pageSize = dto.NormalizePage(page, pageSize)
	reviews, total, err := s.reviewRepo.ListPending(ctx, page, pageSize)
	if err != nil {
		return nil, storageErr("list pending reviews", err)
	}
	return dto.NewPaginatedResponse(dto.FromModelsToReviewResponses(reviews), int(total), page, pageSize), nil
}

// Approve is idempotent; there is no way back to unapproved.
func (s *reviewService) Approve(ctx context.Context, id int64) error {
	if _, err := s.reviewRepo.Approve(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrReviewNotFound
		}
		return storageErr("approve review", err)
	}
	return nil
}

func (s *reviewService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.reviewRepo.Delete(ctx, id)
	if err != nil {
		return storageErr("delete review", err)
	}
	if !deleted {
		return ErrReviewNotFound
	}
	return nil
}

func (s *reviewService) ensureMovie(ctx context.Context, movieID int64) error {
	ok, err := s.movieRepo.Exists(ctx, movieID)
	if err != nil {
		return storageErr("check movie", err)
	}
	if !ok {
		return ErrMovieNotFound
	}
	return nil
}

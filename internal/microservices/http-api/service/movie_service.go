package service

import (
	"context"

	"moviereview/internal/microservices/http-api/dto"
	"moviereview/internal/microservices/http-api/repository"
)

type MovieService interface {
	List(ctx context.Context, genre, sort string) ([]dto.MovieResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MovieResponse, error)
	Create(ctx context.Context, req dto.CreateMovieDTO) (*dto.MovieResponse, error)
	Delete(ctx context.Context, id int64) error
	ListByGenre(ctx context.Context, genre string, page, pageSize int) (*dto.PaginatedResponse[dto.MovieResponse], error)
	Stats(ctx context.Context) (*dto.MovieStatsResponse, error)
}

type movieService struct {
	movieRepo  repository.MovieRepository
	reviewRepo repository.ReviewRepository
}

func NewMovieService(movieRepo repository.MovieRepository, reviewRepo repository.ReviewRepository) MovieService {
	return &movieService{movieRepo: movieRepo, reviewRepo: reviewRepo}
}

// List returns every movie, optionally filtered by genre. Unknown sort keys
// fall back to popular.
func (s *movieService) List(ctx context.Context, genre, sort string) ([]dto.MovieResponse, error) {
	movies, err := s.movieRepo.GetAll(ctx, repository.MovieFilter{Genre: genre, Sort: sort})
	if err != nil {
		return nil, storageErr("list movies", err)
	}
	return dto.FromModelsToMovieResponses(movies), nil
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*dto.MovieResponse, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrMovieNotFound
		}
		return nil, storageErr("get movie", err)
	}
	return dto.FromModelToMovieResponse(movie), nil
}

func (s *movieService) Create(ctx context.Context, req dto.CreateMovieDTO) (*dto.MovieResponse, error) {
	movie := req.ToModel()
	if err := s.movieRepo.Create(ctx, &movie); err != nil {
		return nil, storageErr("create movie", err)
	}
	return dto.FromModelToMovieResponse(&movie), nil
}

func (s *movieService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.movieRepo.Delete(ctx, id)
	if err != nil {
		return storageErr("delete movie", err)
	}
	if !deleted {
		return ErrMovieNotFound
	}
	return nil
}

func (s *movieService) ListByGenre(ctx context.Context, genre string, page, pageSize int) (*dto.PaginatedResponse[dto.MovieResponse], error) {
	page, pageSize = dto.NormalizePage(page, pageSize)
	movies, total, err := s.movieRepo.GetByGenre(ctx, genre, page, pageSize)
	if err != nil {
		return nil, storageErr("list movies by genre", err)
	}
	return dto.NewPaginatedResponse(dto.FromModelsToMovieResponses(movies), int(total), page, pageSize), nil
}

// Stats counts movies and all reviews, approved or not.
func (s *movieService) Stats(ctx context.Context) (*dto.MovieStatsResponse, error) {
	movies, err := s.movieRepo.Count(ctx)
	if err != nil {
		return nil, storageErr("count movies", err)
	}
	reviews, err := s.reviewRepo.Count(ctx)
	if err != nil {
		return nil, storageErr("count reviews", err)
	}
	return &dto.MovieStatsResponse{MoviesCount: movies, ReviewsCount: reviews}, nil
}

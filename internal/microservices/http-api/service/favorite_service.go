package service

import (
	"context"

	"moviereview/internal/microservices/http-api/dto"
	"moviereview/internal/microservices/http-api/repository"
)

type FavoriteService interface {
	IsFavorite(ctx context.Context, movieID, userID int64) (bool, error)
	Add(ctx context.Context, movieID, userID int64) (*dto.FavoriteResponse, error)
	Remove(ctx context.Context, movieID, userID int64) error
	ListForUser(ctx context.Context, userID int64, page, pageSize int) (*dto.PaginatedResponse[dto.FavoriteResponse], error)
	GetByID(ctx context.Context, id int64) (*dto.FavoriteResponse, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	movieRepo    repository.MovieRepository
	userRepo     repository.UserRepository
}

func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	movieRepo repository.MovieRepository,
	userRepo repository.UserRepository,
) FavoriteService {
	return &favoriteService{favoriteRepo: favoriteRepo, movieRepo: movieRepo, userRepo: userRepo}
}

func (s *favoriteService) IsFavorite(ctx context.Context, movieID, userID int64) (bool, error) {
	ok, err := s.favoriteRepo.Exists(ctx, movieID, userID)
	if err != nil {
		return false, storageErr("check favorite", err)
	}
	return ok, nil
}

// Add returns ErrAlreadyFavorite instead of inserting a second row.
func (s *favoriteService) Add(ctx context.Context, movieID, userID int64) (*dto.FavoriteResponse, error) {
	ok, err := s.movieRepo.Exists(ctx, movieID)
	if err != nil {
		return nil, storageErr("check movie", err)
	}
	if !ok {
		return nil, ErrMovieNotFound
	}
	if err := ensureUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	fav, created, err := s.favoriteRepo.Add(ctx, movieID, userID)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyFavorite
		}
		return nil, storageErr("add favorite", err)
	}
	if !created {
		return nil, ErrAlreadyFavorite
	}
	return dto.FromModelToFavoriteResponse(fav), nil
}

func (s *favoriteService) Remove(ctx context.Context, movieID, userID int64) error {
	removed, err := s.favoriteRepo.Remove(ctx, movieID, userID)
	if err != nil {
		return storageErr("remove favorite", err)
	}
	if !removed {
		return ErrFavoriteNotFound
	}
	return nil
}

func (s *favoriteService) ListForUser(ctx context.Context, userID int64, page, pageSize int) (*dto.PaginatedResponse[dto.FavoriteResponse], error) {
	page, pageSize = dto.NormalizePage(page, pageSize)
	favorites, total, err := s.favoriteRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, storageErr("list favorites", err)
	}
	return dto.NewPaginatedResponse(dto.FromModelsToFavoriteResponses(favorites), int(total), page, pageSize), nil
}

func (s *favoriteService) GetByID(ctx context.Context, id int64) (*dto.FavoriteResponse, error) {
	fav, err := s.favoriteRepo.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrFavoriteNotFound
		}
		return nil, storageErr("get favorite", err)
	}
	return dto.FromModelToFavoriteResponse(fav), nil
}

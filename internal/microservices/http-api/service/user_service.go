package service

import (
	"context"

	"moviereview/internal/microservices/http-api/dto"
	"moviereview/internal/microservices/http-api/repository"
	"moviereview/internal/middleware/auth"
)

type UserService interface {
	GetByID(ctx context.Context, id int64) (*dto.UserResponse, error)
	List(ctx context.Context, page, pageSize int) (*dto.PaginatedResponse[dto.UserResponse], error)
	Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

func NewUserService(userRepo repository.UserRepository, bcryptCost int) UserService {
	if bcryptCost == 0 {
		bcryptCost = auth.DefaultCost
	}
	return &userService{userRepo: userRepo, bcryptCost: bcryptCost}
}

func (s *userService) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, storageErr("get user", err)
	}
	return dto.FromModelToUserResponse(user), nil
}

func (s *userService) List(ctx context.Context, page, pageSize int) (*dto.PaginatedResponse[dto.UserResponse], error) {
	page, pageSize = dto.NormalizePage(page, pageSize)
	users, total, err := s.userRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, storageErr("list users", err)
	}

	data := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		data = append(data, *dto.FromModelToUserResponse(&users[i]))
	}
	return dto.NewPaginatedResponse(data, int(total), page, pageSize), nil
}

// Update applies only the fields present in req. A new password is hashed
// before it reaches the repository.
func (s *userService) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, storageErr("get user", err)
	}

	if err := ensureAvailable(ctx, s.userRepo, id, req.Email, req.Username); err != nil {
		return nil, err
	}

	fields := make(map[string]any, 3)
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Password != nil {
		hashed, err := hashPassword(*req.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = hashed
	}

	if err := s.userRepo.Update(ctx, id, fields); err != nil {
		switch {
		case repository.IsNotFound(err):
			return nil, ErrUserNotFound
		case repository.IsUniqueViolation(err):
			email := ""
			if req.Email != nil {
				email = *req.Email
			}
			return nil, conflictFor(ctx, s.userRepo, id, email)
		default:
			return nil, storageErr("update user", err)
		}
	}

	return s.GetByID(ctx, id)
}

// ensureUser maps a missing account, e.g. one deleted while its token is still valid.
func ensureUser(ctx context.Context, repo repository.UserRepository, id int64) error {
	if _, err := repo.FindByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrUserNotFound
		}
		return storageErr("get user", err)
	}
	return nil
}

// Delete removes the user with its reviews, ratings and favorites.
func (s *userService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return storageErr("delete user", err)
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

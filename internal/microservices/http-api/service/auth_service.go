package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"moviereview/internal/config"
	"moviereview/internal/microservices/http-api/dto"
	"moviereview/internal/microservices/http-api/models"
	"moviereview/internal/microservices/http-api/repository"
	"moviereview/internal/middleware/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "moviereview"

// Claims carried by access tokens.
type Claims struct {
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	IsModerator bool   `json:"is_moderator"`
	IsAdmin     bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

func (c *Claims) CanModerate() bool {
	return c.IsModerator || c.IsAdmin
}

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo       repository.UserRepository
	jwtSecret      []byte
	accessTokenTTL time.Duration
	bcryptCost     int
	now            func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = auth.DefaultCost
	}
	return &authService{
		userRepo:       userRepo,
		jwtSecret:      []byte(cfg.JWTSecret),
		accessTokenTTL: cfg.AccessTokenTTL,
		bcryptCost:     cost,
		now:            time.Now,
	}
}

// Register creates a plain user (is_user only) after checking email then username.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := ensureAvailable(ctx, s.userRepo, 0, &req.Email, &req.Username); err != nil {
		return nil, err
	}

	hashedPassword, err := hashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Username: req.Username,
		Password: hashedPassword,
		IsUser:   true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			// lost a race with a concurrent registration
			return nil, conflictFor(ctx, s.userRepo, 0, req.Email)
		}
		return nil, storageErr("create user", err)
	}

	return dto.FromModelToUserResponse(user), nil
}

// Login never reveals whether the username or the password was wrong.
func (s *authService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if repository.IsNotFound(err) {
			// same bcrypt cost as a real mismatch
			auth.BurnVerify(password)
			return nil, ErrInvalidCredentials
		}
		return nil, storageErr("find user", err)
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.LoginResponse{
		UserResponse: *dto.FromModelToUserResponse(user),
		AccessToken:  token,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.accessTokenTTL.Seconds()),
	}, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID:      user.ID,
		Username:    user.Username,
		IsModerator: user.IsModerator,
		IsAdmin:     user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ensureAvailable fails when email or username belongs to a user other than selfID.
func ensureAvailable(ctx context.Context, repo repository.UserRepository, selfID int64, email, username *string) error {
	if email != nil {
		existing, err := repo.FindByEmail(ctx, *email)
		switch {
		case err == nil && existing.ID != selfID:
			return ErrEmailInUse
		case err != nil && !repository.IsNotFound(err):
			return storageErr("find user by email", err)
		}
	}
	if username != nil {
		existing, err := repo.FindByUsername(ctx, *username)
		switch {
		case err == nil && existing.ID != selfID:
			return ErrNameInUse
		case err != nil && !repository.IsNotFound(err):
			return storageErr("find user by username", err)
		}
	}
	return nil
}

// conflictFor picks the sentinel after the database rejected a duplicate.
// An email that already belongs to selfID cannot be the collision.
func conflictFor(ctx context.Context, repo repository.UserRepository, selfID int64, email string) error {
	if email != "" {
		if existing, err := repo.FindByEmail(ctx, email); err == nil && existing.ID != selfID {
			return ErrEmailInUse
		}
	}
	return ErrNameInUse
}

// hashPassword reports an over-long password as a validation failure.
func hashPassword(password string, cost int) (string, error) {
	hashed, err := auth.HashPasswordWithCost(password, cost)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, auth.MaxPasswordBytes)
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hashed, nil
}

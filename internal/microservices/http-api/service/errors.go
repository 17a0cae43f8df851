package service

import (
	"errors"
	"fmt"
)

// Base kinds; handlers switch on these with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
)

var (
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrMovieNotFound    = fmt.Errorf("movie %w", ErrNotFound)
	ErrReviewNotFound   = fmt.Errorf("review %w", ErrNotFound)
	ErrRatingNotFound   = fmt.Errorf("rating %w", ErrNotFound)
	ErrFavoriteNotFound = fmt.Errorf("movie %w in favorites", ErrNotFound)

	ErrEmailInUse      = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrNameInUse       = fmt.Errorf("%w: username already taken", ErrConflict)
	ErrAlreadyFavorite = fmt.Errorf("%w: movie already in favorites", ErrConflict)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrUnauthorized)
)

// StorageError wraps an unexpected repository failure with the operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

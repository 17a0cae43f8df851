package service

import (
	"context"
	"testing"

	"moviereview/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFavoriteService_AddTwice(t *testing.T) {
	favs := new(MockFavoriteRepository)
	movies := new(MockMovieRepository)
	users := new(MockUserRepository)
	svc := NewFavoriteService(favs, movies, users)
	users.On("FindByID", mock.Anything, int64(7)).Return(&models.User{ID: 7}, nil)

	movies.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	favs.On("Add", mock.Anything, int64(1), int64(7)).Return(&models.Favorite{ID: 5, MovieID: 1, UserID: 7}, true, nil).Once()
	favs.On("Add", mock.Anything, int64(1), int64(7)).Return(&models.Favorite{ID: 5, MovieID: 1, UserID: 7}, false, nil).Once()

	fav, err := svc.Add(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), fav.ID)

	_, err = svc.Add(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrAlreadyFavorite)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestFavoriteService_AddUnknownMovie(t *testing.T) {
	favs := new(MockFavoriteRepository)
	movies := new(MockMovieRepository)
	users := new(MockUserRepository)
	svc := NewFavoriteService(favs, movies, users)
	users.On("FindByID", mock.Anything, int64(7)).Return(&models.User{ID: 7}, nil)

	movies.On("Exists", mock.Anything, int64(404)).Return(false, nil)

	_, err := svc.Add(context.Background(), 404, 7)
	assert.ErrorIs(t, err, ErrMovieNotFound)
	favs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestFavoriteService_AddDeletedUser(t *testing.T) {
	favs := new(MockFavoriteRepository)
	movies := new(MockMovieRepository)
	users := new(MockUserRepository)
	svc := NewFavoriteService(favs, movies, users)

	movies.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	users.On("FindByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Add(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrUserNotFound)
	favs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestFavoriteService_AddDuplicateKey(t *testing.T) {
	favs := new(MockFavoriteRepository)
	movies := new(MockMovieRepository)
	users := new(MockUserRepository)
	svc := NewFavoriteService(favs, movies, users)
	users.On("FindByID", mock.Anything, int64(7)).Return(&models.User{ID: 7}, nil)

	movies.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	favs.On("Add", mock.Anything, int64(1), int64(7)).Return(nil, false, gorm.ErrDuplicatedKey)

	_, err := svc.Add(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrAlreadyFavorite)
}

func TestFavoriteService_RemoveAndCheck(t *testing.T) {
	favs := new(MockFavoriteRepository)
	svc := NewFavoriteService(favs, new(MockMovieRepository), new(MockUserRepository))

	favs.On("Remove", mock.Anything, int64(1), int64(7)).Return(true, nil).Once()
	favs.On("Remove", mock.Anything, int64(1), int64(7)).Return(false, nil).Once()
	favs.On("Exists", mock.Anything, int64(1), int64(7)).Return(false, nil)

	assert.NoError(t, svc.Remove(context.Background(), 1, 7))
	assert.ErrorIs(t, svc.Remove(context.Background(), 1, 7), ErrFavoriteNotFound)

	ok, err := svc.IsFavorite(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavoriteService_ListForUserIncludesMovie(t *testing.T) {
	favs := new(MockFavoriteRepository)
	svc := NewFavoriteService(favs, new(MockMovieRepository), new(MockUserRepository))

	favs.On("ListByUser", mock.Anything, int64(7), 1, 20).Return([]models.Favorite{
		{ID: 1, MovieID: 1, UserID: 7, Movie: &models.Movie{ID: 1, Title: "Inception"}},
	}, int64(1), nil)
	favs.On("GetByID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)

	page, err := svc.ListForUser(context.Background(), 7, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.NotNil(t, page.Data[0].Movie)
	assert.Equal(t, "Inception", page.Data[0].Movie.Title)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

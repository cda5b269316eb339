package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/showrack/showrack/internal/domain"
	apperrors "github.com/showrack/showrack/pkg/errors"
)

func TestWishlistService_Add_Success(t *testing.T) {
	repo := new(mockWishlistRepository)
	svc := NewWishlistService(repo, nil, testLogger(t))

	want := &domain.WishlistEntry{UserID: 1, ItemID: 603, AddedAt: time.Now().UTC()}
	repo.On("Add", mock.Anything, int64(1), int64(603)).Return(want, nil)

	entry, err := svc.Add(context.Background(), 1, 603)
	require.NoError(t, err)
	assert.Equal(t, want, entry)
}

func TestWishlistService_Add_RejectsNonPositiveID(t *testing.T) {
	repo := new(mockWishlistRepository)
	svc := NewWishlistService(repo, nil, testLogger(t))

	_, err := svc.Add(context.Background(), 1, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput), "expected ErrInvalidInput, got: %v", err)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestWishlistService_Add_Duplicate(t *testing.T) {
	repo := new(mockWishlistRepository)
	svc := NewWishlistService(repo, nil, testLogger(t))

	repo.On("Add", mock.Anything, int64(1), int64(603)).
		Return(nil, apperrors.Conflict("item already in wishlist"))

	_, err := svc.Add(context.Background(), 1, 603)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict), "expected ErrConflict, got: %v", err)
}

func TestWishlistService_Remove_AbsentIsNoop(t *testing.T) {
	repo := new(mockWishlistRepository)
	svc := NewWishlistService(repo, nil, testLogger(t))

	repo.On("Remove", mock.Anything, int64(1), int64(999)).Return(nil)

	err := svc.Remove(context.Background(), 1, 999)
	assert.NoError(t, err)
}

func TestWishlistService_List(t *testing.T) {
	repo := new(mockWishlistRepository)
	svc := NewWishlistService(repo, nil, testLogger(t))

	want := []domain.WishlistEntry{{UserID: 1, ItemID: 603}}
	repo.On("List", mock.Anything, int64(1)).Return(want, nil)

	entries, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, want, entries)
}

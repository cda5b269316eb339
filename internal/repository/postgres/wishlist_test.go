package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/showrack/showrack/pkg/errors"
)

func newWishlistTestFixture(t *testing.T) (*WishlistRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := NewWishlistRepository(mock)
	return repo, mock
}

// ---------------------------------------------------------------------------
// Add
// ---------------------------------------------------------------------------

func TestWishlistRepository_Add_Success(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	addedAt := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO wishlists").
		WithArgs(int64(1), int64(603)).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(addedAt))

	entry, err := repo.Add(context.Background(), 1, 603)
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.UserID)
	assert.Equal(t, int64(603), entry.ItemID)
	assert.Equal(t, addedAt, entry.AddedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_Add_Duplicate(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	// ON CONFLICT DO NOTHING swallows the insert, so RETURNING yields no rows.
	mock.ExpectQuery("INSERT INTO wishlists").
		WithArgs(int64(1), int64(603)).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}))

	_, err := repo.Add(context.Background(), 1, 603)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict), "expected ErrConflict, got: %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_Add_QueryError(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO wishlists").
		WithArgs(int64(1), int64(603)).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Add(context.Background(), 1, 603)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add to wishlist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// Remove
// ---------------------------------------------------------------------------

func TestWishlistRepository_Remove_Success(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM wishlists WHERE user_id =").
		WithArgs(int64(1), int64(603)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Remove(context.Background(), 1, 603)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_Remove_AbsentIsNoop(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM wishlists WHERE user_id =").
		WithArgs(int64(1), int64(999)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Remove(context.Background(), 1, 999)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_Remove_ExecError(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM wishlists WHERE user_id =").
		WithArgs(int64(1), int64(603)).
		WillReturnError(errors.New("connection refused"))

	err := repo.Remove(context.Background(), 1, 603)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remove from wishlist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestWishlistRepository_List_Success(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"user_id", "item_id", "created_at"}).
		AddRow(int64(1), int64(603), now.Add(-2*time.Hour)).
		AddRow(int64(1), int64(278), now.Add(-time.Hour)).
		AddRow(int64(1), int64(155), now)

	mock.ExpectQuery("SELECT user_id, item_id, created_at").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	entries, err := repo.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(603), entries[0].ItemID)
	assert.Equal(t, int64(278), entries[1].ItemID)
	assert.Equal(t, int64(155), entries[2].ItemID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_List_Empty(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT user_id, item_id, created_at").
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "item_id", "created_at"}))

	entries, err := repo.List(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistRepository_List_QueryError(t *testing.T) {
	repo, mock := newWishlistTestFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT user_id, item_id, created_at").
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.List(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list wishlist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

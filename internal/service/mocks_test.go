package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/showrack/showrack/internal/catalog"
	"github.com/showrack/showrack/internal/domain"
)

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Mock User Repository ---

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock Wishlist Repository ---

type mockWishlistRepository struct {
	mock.Mock
}

func (m *mockWishlistRepository) Add(ctx context.Context, userID, itemID int64) (*domain.WishlistEntry, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WishlistEntry), args.Error(1)
}

func (m *mockWishlistRepository) Remove(ctx context.Context, userID, itemID int64) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *mockWishlistRepository) List(ctx context.Context, userID int64) ([]domain.WishlistEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WishlistEntry), args.Error(1)
}

// --- Mock Catalog Gateway ---

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Trending(ctx context.Context, kind catalog.Kind, page int) (*catalog.Page, error) {
	args := m.Called(ctx, kind, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Page), args.Error(1)
}

func (m *mockGateway) Popular(ctx context.Context, kind catalog.Kind, page int) (*catalog.Page, error) {
	args := m.Called(ctx, kind, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Page), args.Error(1)
}

func (m *mockGateway) Details(ctx context.Context, kind catalog.Kind, id int64) (*catalog.Details, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Details), args.Error(1)
}

func (m *mockGateway) Similar(ctx context.Context, kind catalog.Kind, id int64, page int) (*catalog.Page, error) {
	args := m.Called(ctx, kind, id, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Page), args.Error(1)
}

func (m *mockGateway) Search(ctx context.Context, kind catalog.SearchKind, query string, page int) (*catalog.Page, error) {
	args := m.Called(ctx, kind, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Page), args.Error(1)
}

func (m *mockGateway) Genres(ctx context.Context, kind catalog.Kind) (*catalog.GenreList, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.GenreList), args.Error(1)
}

func (m *mockGateway) Discover(ctx context.Context, kind catalog.Kind, filters catalog.DiscoverFilters) (*catalog.Page, error) {
	args := m.Called(ctx, kind, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Page), args.Error(1)
}

func (m *mockGateway) Resolve(ctx context.Context, id int64) (*catalog.Resolved, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Resolved), args.Error(1)
}

// --- Mock LLM Client ---

type mockLLM struct {
	mock.Mock
}

func (m *mockLLM) GenerateText(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}

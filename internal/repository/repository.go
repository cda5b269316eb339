package repository

import (
	"context"

	"github.com/showrack/showrack/internal/domain"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create inserts a new user and fills in its generated ID and timestamp.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique identifier.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// WishlistRepository defines the interface for wishlist persistence
// operations.
type WishlistRepository interface {
	// Add inserts a catalog item into the user's wishlist. Adding an item
	// already present returns a conflict error.
	Add(ctx context.Context, userID, itemID int64) (*domain.WishlistEntry, error)

	// Remove deletes an item from the user's wishlist. Removing an absent
	// item is a no-op.
	Remove(ctx context.Context, userID, itemID int64) error

	// List returns the user's wishlist in insertion order, oldest first.
	List(ctx context.Context, userID int64) ([]domain.WishlistEntry, error)
}

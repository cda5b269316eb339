package postgres

import (
	"context"
	"fmt"

	"github.com/showrack/showrack/internal/domain"
	"github.com/showrack/showrack/pkg/database"
	apperrors "github.com/showrack/showrack/pkg/errors"
)

// WishlistRepository implements repository.WishlistRepository using PostgreSQL.
type WishlistRepository struct {
	db DB
}

// NewWishlistRepository creates a new PostgreSQL-backed wishlist repository.
func NewWishlistRepository(db DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Add inserts a catalog item into the user's wishlist. The unique constraint
// makes a duplicate insert a no-op, which Add surfaces as a conflict.
func (r *WishlistRepository) Add(ctx context.Context, userID, itemID int64) (_ *domain.WishlistEntry, err error) {
	query := `
		INSERT INTO wishlists (user_id, item_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, item_id) DO NOTHING
		RETURNING created_at`

	ctx, end := database.TraceQuery(ctx, "AddWishlistItem", query)
	defer func() { end(err) }()

	var entry domain.WishlistEntry
	entry.UserID = userID
	entry.ItemID = itemID

	rows, err := r.db.Query(ctx, query, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("add to wishlist: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("add to wishlist: %w", err)
		}
		return nil, apperrors.Conflict("item already in wishlist")
	}
	if err := rows.Scan(&entry.AddedAt); err != nil {
		return nil, fmt.Errorf("scan wishlist entry: %w", err)
	}

	return &entry, nil
}

// Remove deletes an item from the user's wishlist. Removing an item that is
// not present succeeds without effect.
func (r *WishlistRepository) Remove(ctx context.Context, userID, itemID int64) (err error) {
	query := `DELETE FROM wishlists WHERE user_id = $1 AND item_id = $2`

	ctx, end := database.TraceQuery(ctx, "RemoveWishlistItem", query)
	defer func() { end(err) }()

	if _, err := r.db.Exec(ctx, query, userID, itemID); err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}

	return nil
}

// List returns the user's wishlist in insertion order, oldest first.
func (r *WishlistRepository) List(ctx context.Context, userID int64) (_ []domain.WishlistEntry, err error) {
	query := `
		SELECT user_id, item_id, created_at
		FROM wishlists
		WHERE user_id = $1
		ORDER BY id ASC`

	ctx, end := database.TraceQuery(ctx, "ListWishlist", query)
	defer func() { end(err) }()

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	defer rows.Close()

	entries := []domain.WishlistEntry{}
	for rows.Next() {
		var entry domain.WishlistEntry
		if err := rows.Scan(&entry.UserID, &entry.ItemID, &entry.AddedAt); err != nil {
			return nil, fmt.Errorf("scan wishlist entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wishlist rows: %w", err)
	}

	return entries, nil
}

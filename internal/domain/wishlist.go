package domain

import "time"

// WishlistEntry is one saved catalog item. A user may save a given item at
// most once; uniqueness of (user_id, item_id) is enforced by the store.
type WishlistEntry struct {
	UserID  int64     `json:"user_id"`
	ItemID  int64     `json:"item_id"`
	AddedAt time.Time `json:"added_at"`
}

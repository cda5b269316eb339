package domain

import "github.com/showrack/showrack/internal/catalog"

// RecommendationReason tags why a recommendation set has the contents it
// does. The UI renders an empty wishlist differently from a wishlist that
// simply produced no matches, so the two empty cases are distinct values.
type RecommendationReason string

const (
	// ReasonOK means the set carries at least one recommended item.
	ReasonOK RecommendationReason = "ok"

	// ReasonEmptyWishlist means the user has nothing wishlisted; no
	// upstream calls were made.
	ReasonEmptyWishlist RecommendationReason = "empty_wishlist"

	// ReasonNoMatches means the wishlist was seeded but every similar
	// item was filtered out or none were found.
	ReasonNoMatches RecommendationReason = "no_matches"
)

// RecommendationSet is the derived, per-request result of seeding "similar
// items" lookups from a user's recent wishlist entries. It has no stored
// identity and is recomputed on every request.
type RecommendationSet struct {
	Reason RecommendationReason `json:"reason"`
	Items  []catalog.Item       `json:"items"`
}

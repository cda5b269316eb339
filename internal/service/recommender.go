package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/showrack/showrack/internal/catalog"
	"github.com/showrack/showrack/internal/domain"
	"github.com/showrack/showrack/internal/repository"
	apperrors "github.com/showrack/showrack/pkg/errors"
)

// Default fan-out width and result cap for recommendations.
const (
	DefaultSeedCount  = 5
	DefaultMaxResults = 12
)

// RecommenderService derives recommendations from a user's wishlist by
// fanning out similarity lookups over the most recently added items.
type RecommenderService struct {
	wishlistRepo repository.WishlistRepository
	gateway      catalog.Gateway
	seedCount    int
	maxResults   int
	logger       *slog.Logger
}

// NewRecommenderService creates a new recommender. Zero seedCount or
// maxResults fall back to the defaults.
func NewRecommenderService(
	wishlistRepo repository.WishlistRepository,
	gateway catalog.Gateway,
	seedCount, maxResults int,
	logger *slog.Logger,
) *RecommenderService {
	if seedCount <= 0 {
		seedCount = DefaultSeedCount
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &RecommenderService{
		wishlistRepo: wishlistRepo,
		gateway:      gateway,
		seedCount:    seedCount,
		maxResults:   maxResults,
		logger:       logger,
	}
}

// RecommendOptions override the configured fan-out width and result cap for
// one call. Zero values keep the configured defaults.
type RecommendOptions struct {
	SeedCount  int
	MaxResults int
}

type seedResult struct {
	page *catalog.Page
	err  error
}

// Recommend builds a recommendation set for the user. The most recently
// added wishlist items act as seeds; each seed's similar titles are fetched
// concurrently, merged in seed order with first-occurrence dedup, stripped of
// anything already wishlisted, and capped. Individual seed failures are
// tolerated; only when every seed fails does the call error.
func (s *RecommenderService) Recommend(ctx context.Context, userID int64, opts RecommendOptions) (*domain.RecommendationSet, error) {
	seedCount := s.seedCount
	if opts.SeedCount > 0 {
		seedCount = opts.SeedCount
	}
	maxResults := s.maxResults
	if opts.MaxResults > 0 {
		maxResults = opts.MaxResults
	}

	entries, err := s.wishlistRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}

	if len(entries) == 0 {
		return &domain.RecommendationSet{
			Reason: domain.ReasonEmptyWishlist,
			Items:  []catalog.Item{},
		}, nil
	}

	wishlisted := make(map[int64]struct{}, len(entries))
	for _, e := range entries {
		wishlisted[e.ItemID] = struct{}{}
	}

	// Newest additions first.
	seeds := make([]int64, 0, seedCount)
	for i := len(entries) - 1; i >= 0 && len(seeds) < seedCount; i-- {
		seeds = append(seeds, entries[i].ItemID)
	}

	// Fetch every seed's similar titles concurrently and let each settle;
	// a failed seed only narrows the pool.
	results := make([]seedResult, len(seeds))
	var wg sync.WaitGroup
	for i, seedID := range seeds {
		wg.Add(1)
		go func(i int, seedID int64) {
			defer wg.Done()
			page, err := s.gateway.Similar(ctx, catalog.KindMovie, seedID, 1)
			results[i] = seedResult{page: page, err: err}
		}(i, seedID)
	}
	wg.Wait()

	failures := 0
	for i, res := range results {
		if res.err != nil {
			failures++
			s.logger.WarnContext(ctx, "similarity lookup failed for seed",
				slog.Int64("seed_id", seeds[i]),
				slog.String("error", res.err.Error()),
			)
		}
	}
	if failures == len(seeds) {
		return nil, apperrors.Unavailable("catalog", fmt.Errorf("all %d similarity lookups failed", len(seeds)))
	}

	// Merge in seed order, keeping the first occurrence of each title and
	// dropping anything the user already has.
	seen := make(map[int64]struct{})
	items := make([]catalog.Item, 0, maxResults)
merge:
	for _, res := range results {
		if res.err != nil {
			continue
		}
		for _, item := range res.page.Results {
			if _, dup := seen[item.ID]; dup {
				continue
			}
			seen[item.ID] = struct{}{}
			if _, owned := wishlisted[item.ID]; owned {
				continue
			}
			items = append(items, item)
			if len(items) == maxResults {
				break merge
			}
		}
	}

	reason := domain.ReasonOK
	if len(items) == 0 {
		reason = domain.ReasonNoMatches
	}

	return &domain.RecommendationSet{Reason: reason, Items: items}, nil
}

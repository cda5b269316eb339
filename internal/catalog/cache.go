package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/showrack/showrack/pkg/errors"
)

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}

// CachedGateway wraps a Gateway with a redis read-through cache for the calls
// the recommender and assistant hammer: similar, details, and genres. Cache
// failures are logged and fall through to the upstream, so a dead redis only
// costs latency.
type CachedGateway struct {
	next  Gateway
	redis *redis.Client
	ttl   time.Duration
	log   *slog.Logger
}

// NewCachedGateway wraps next with a redis cache. ttl of zero defaults to
// ten minutes, matching how long recommendation inputs stay fresh.
func NewCachedGateway(next Gateway, rdb *redis.Client, ttl time.Duration, log *slog.Logger) *CachedGateway {
	if ttl == 0 {
		ttl = 10 * time.Minute
	}
	return &CachedGateway{next: next, redis: rdb, ttl: ttl, log: log}
}

// cached runs fetch with a read-through cache at key, decoding into a fresh T.
func cached[T any](ctx context.Context, g *CachedGateway, key string, fetch func() (*T, error)) (*T, error) {
	raw, err := g.redis.Get(ctx, key).Bytes()
	if err == nil {
		var out T
		if err := json.Unmarshal(raw, &out); err == nil {
			return &out, nil
		}
		g.log.Warn("dropping corrupt cache entry", slog.String("key", key))
		g.redis.Del(ctx, key)
	} else if err != redis.Nil {
		g.log.Warn("cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	out, err := fetch()
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(out); err == nil {
		if err := g.redis.Set(ctx, key, raw, g.ttl).Err(); err != nil {
			g.log.Warn("cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return out, nil
}

// Trending is passed through uncached; the upstream already serves it fast
// and it changes too often to be worth a slot.
func (g *CachedGateway) Trending(ctx context.Context, kind Kind, page int) (*Page, error) {
	return g.next.Trending(ctx, kind, page)
}

// Popular is passed through uncached.
func (g *CachedGateway) Popular(ctx context.Context, kind Kind, page int) (*Page, error) {
	return g.next.Popular(ctx, kind, page)
}

// Details serves item records through the cache.
func (g *CachedGateway) Details(ctx context.Context, kind Kind, id int64) (*Details, error) {
	key := fmt.Sprintf("catalog:details:%s:%d", kind, id)
	return cached(ctx, g, key, func() (*Details, error) {
		return g.next.Details(ctx, kind, id)
	})
}

// Similar serves similarity pages through the cache.
func (g *CachedGateway) Similar(ctx context.Context, kind Kind, id int64, page int) (*Page, error) {
	key := fmt.Sprintf("catalog:similar:%s:%d:%d", kind, id, page)
	return cached(ctx, g, key, func() (*Page, error) {
		return g.next.Similar(ctx, kind, id, page)
	})
}

// Search is passed through uncached.
func (g *CachedGateway) Search(ctx context.Context, kind SearchKind, query string, page int) (*Page, error) {
	return g.next.Search(ctx, kind, query, page)
}

// Genres serves the genre lists through the cache. They change rarely, so
// they get a longer expiry.
func (g *CachedGateway) Genres(ctx context.Context, kind Kind) (*GenreList, error) {
	key := fmt.Sprintf("catalog:genres:%s", kind)
	raw, err := g.redis.Get(ctx, key).Bytes()
	if err == nil {
		var out GenreList
		if err := json.Unmarshal(raw, &out); err == nil {
			return &out, nil
		}
		g.redis.Del(ctx, key)
	} else if err != redis.Nil {
		g.log.Warn("cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	out, err := g.next.Genres(ctx, kind)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(out); err == nil {
		if err := g.redis.Set(ctx, key, raw, 24*time.Hour).Err(); err != nil {
			g.log.Warn("cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return out, nil
}

// Discover is passed through uncached.
func (g *CachedGateway) Discover(ctx context.Context, kind Kind, filters DiscoverFilters) (*Page, error) {
	return g.next.Discover(ctx, kind, filters)
}

// Resolve is built on the cached Details calls so the assistant's per-item
// lookups reuse the same entries.
func (g *CachedGateway) Resolve(ctx context.Context, id int64) (*Resolved, error) {
	movie, err := g.Details(ctx, KindMovie, id)
	if err == nil {
		return &Resolved{Kind: KindMovie, Details: movie}, nil
	}
	if !isNotFound(err) {
		return nil, err
	}
	show, err := g.Details(ctx, KindTV, id)
	if err != nil {
		return nil, err
	}
	return &Resolved{Kind: KindTV, Details: show}, nil
}

package catalog

import "context"

// Gateway is the read-only catalog surface the rest of the service consumes.
// Implementations are the upstream HTTP client and the redis-cached wrapper
// around it.
type Gateway interface {
	Trending(ctx context.Context, kind Kind, page int) (*Page, error)
	Popular(ctx context.Context, kind Kind, page int) (*Page, error)
	Details(ctx context.Context, kind Kind, id int64) (*Details, error)
	Similar(ctx context.Context, kind Kind, id int64, page int) (*Page, error)
	Search(ctx context.Context, kind SearchKind, query string, page int) (*Page, error)
	Genres(ctx context.Context, kind Kind) (*GenreList, error)
	Discover(ctx context.Context, kind Kind, filters DiscoverFilters) (*Page, error)

	// Resolve looks id up as a movie first, then as a show when the movie
	// lookup reports not found.
	Resolve(ctx context.Context, id int64) (*Resolved, error)
}

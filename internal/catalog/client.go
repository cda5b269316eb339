package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apperrors "github.com/showrack/showrack/pkg/errors"
	"github.com/showrack/showrack/pkg/httpclient"
)

const upstreamName = "catalog"

// ClientConfig holds the upstream catalog API settings.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the upstream catalog API over HTTP. It satisfies Gateway.
type Client struct {
	cfg  ClientConfig
	http *httpclient.CircuitBreakerClient
	log  *slog.Logger
}

// NewClient builds the upstream catalog client.
func NewClient(cfg ClientConfig, http *httpclient.CircuitBreakerClient, log *slog.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{cfg: cfg, http: http, log: log}
}

// get fetches path with the given query parameters, injects the API key, and
// decodes the JSON body into out. A 404 maps to ErrNotFound; transport
// failures, open breaker, and other non-200 responses map to ErrUnavailable.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.cfg.APIKey)

	u := c.cfg.BaseURL + path + "?" + query.Encode()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return apperrors.Unavailable(upstreamName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperrors.Unavailable(upstreamName, fmt.Errorf("decode response: %w", err))
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return apperrors.NotFound("catalog item", path)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return apperrors.Unavailable(upstreamName, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body)))
	}
}

func pageQuery(page int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	return q
}

// Trending returns this week's trending items of the given kind.
func (c *Client) Trending(ctx context.Context, kind Kind, page int) (*Page, error) {
	var out Page
	if err := c.get(ctx, fmt.Sprintf("/trending/%s/week", kind), pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Popular returns the popular items of the given kind.
func (c *Client) Popular(ctx context.Context, kind Kind, page int) (*Page, error) {
	var out Page
	if err := c.get(ctx, fmt.Sprintf("/%s/popular", kind), pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Details returns the full record of one item, with credits and videos
// appended.
func (c *Client) Details(ctx context.Context, kind Kind, id int64) (*Details, error) {
	q := url.Values{}
	q.Set("append_to_response", "credits,videos,images")

	var out Details
	if err := c.get(ctx, fmt.Sprintf("/%s/%d", kind, id), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Similar returns items similar to the given one.
func (c *Client) Similar(ctx context.Context, kind Kind, id int64, page int) (*Page, error) {
	var out Page
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/similar", kind, id), pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs a text search of the given kind.
func (c *Client) Search(ctx context.Context, kind SearchKind, query string, page int) (*Page, error) {
	q := pageQuery(page)
	q.Set("query", query)

	var out Page
	if err := c.get(ctx, fmt.Sprintf("/search/%s", kind), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Genres lists the genres of the given kind.
func (c *Client) Genres(ctx context.Context, kind Kind) (*GenreList, error) {
	var out GenreList
	if err := c.get(ctx, fmt.Sprintf("/genre/%s/list", kind), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Discover lists items of the given kind filtered by genre and year, sorted
// by popularity.
func (c *Client) Discover(ctx context.Context, kind Kind, filters DiscoverFilters) (*Page, error) {
	q := pageQuery(filters.Page)
	q.Set("sort_by", "popularity.desc")
	if filters.GenreID > 0 {
		q.Set("with_genres", strconv.FormatInt(filters.GenreID, 10))
	}
	if filters.Year > 0 {
		if kind == KindTV {
			q.Set("first_air_date_year", strconv.Itoa(filters.Year))
		} else {
			q.Set("primary_release_year", strconv.Itoa(filters.Year))
		}
	}

	var out Page
	if err := c.get(ctx, fmt.Sprintf("/discover/%s", kind), q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Resolve tries the ID as a movie first and falls back to a show. Only when
// both lookups report not found does it return ErrNotFound.
func (c *Client) Resolve(ctx context.Context, id int64) (*Resolved, error) {
	movie, err := c.Details(ctx, KindMovie, id)
	if err == nil {
		return &Resolved{Kind: KindMovie, Details: movie}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	show, err := c.Details(ctx, KindTV, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("catalog item", strconv.FormatInt(id, 10))
		}
		return nil, err
	}
	return &Resolved{Kind: KindTV, Details: show}, nil
}

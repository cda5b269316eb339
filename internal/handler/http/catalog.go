package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/showrack/showrack/internal/catalog"
	apperrors "github.com/showrack/showrack/pkg/errors"
	"github.com/showrack/showrack/pkg/httputil"
)

// CatalogHandler exposes the upstream catalog browsing endpoints.
type CatalogHandler struct {
	gateway catalog.Gateway
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(gateway catalog.Gateway, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{gateway: gateway, logger: logger}
}

func queryPage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Trending handles GET /api/v1/{kind}/trending where kind is movies or tv.
func (h *CatalogHandler) Trending(kind catalog.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.gateway.Trending(r.Context(), kind, queryPage(r))
		if err != nil {
			httputil.WriteError(w, r, err, h.logger)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: page})
	}
}

// Popular handles GET /api/v1/{kind}/popular.
func (h *CatalogHandler) Popular(kind catalog.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.gateway.Popular(r.Context(), kind, queryPage(r))
		if err != nil {
			httputil.WriteError(w, r, err, h.logger)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: page})
	}
}

// Details handles GET /api/v1/movies/{id} and GET /api/v1/tv/{id}.
func (h *CatalogHandler) Details(kind catalog.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			httputil.WriteError(w, r, apperrors.InvalidInput("id must be an integer"), h.logger)
			return
		}

		details, err := h.gateway.Details(r.Context(), kind, id)
		if err != nil {
			httputil.WriteError(w, r, err, h.logger)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: details})
	}
}

// Similar handles GET /api/v1/movies/{id}/similar and GET /api/v1/tv/{id}/similar.
func (h *CatalogHandler) Similar(kind catalog.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			httputil.WriteError(w, r, apperrors.InvalidInput("id must be an integer"), h.logger)
			return
		}

		page, err := h.gateway.Similar(r.Context(), kind, id, queryPage(r))
		if err != nil {
			httputil.WriteError(w, r, err, h.logger)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: page})
	}
}

// Genres handles GET /api/v1/genres/{kind}.
func (h *CatalogHandler) Genres(w http.ResponseWriter, r *http.Request) {
	kind, err := catalog.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput(err.Error()), h.logger)
		return
	}

	genres, err := h.gateway.Genres(r.Context(), kind)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: genres})
}

// Search handles GET /api/v1/search?q=...&kind=movie|tv|multi.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("q is required"), h.logger)
		return
	}

	kindParam := r.URL.Query().Get("kind")
	if kindParam == "" {
		kindParam = string(catalog.SearchMulti)
	}
	kind, err := catalog.ParseSearchKind(kindParam)
	if err != nil {
		httputil.WriteError(w, r, apperrors.InvalidInput(err.Error()), h.logger)
		return
	}

	page, err := h.gateway.Search(r.Context(), kind, query, queryPage(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: page})
}

// Discover handles GET /api/v1/discover/movies and /api/v1/discover/tv with
// optional genre and year filters.
func (h *CatalogHandler) Discover(kind catalog.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := catalog.DiscoverFilters{Page: queryPage(r)}

		if raw := r.URL.Query().Get("genre"); raw != "" {
			genreID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				httputil.WriteError(w, r, apperrors.InvalidInput("genre must be an integer"), h.logger)
				return
			}
			filters.GenreID = genreID
		}
		if raw := r.URL.Query().Get("year"); raw != "" {
			year, err := strconv.Atoi(raw)
			if err != nil {
				httputil.WriteError(w, r, apperrors.InvalidInput("year must be an integer"), h.logger)
				return
			}
			filters.Year = year
		}

		page, err := h.gateway.Discover(r.Context(), kind, filters)
		if err != nil {
			httputil.WriteError(w, r, err, h.logger)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: page})
	}
}

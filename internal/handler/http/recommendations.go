package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/showrack/showrack/internal/service"
	"github.com/showrack/showrack/pkg/httputil"
	"github.com/showrack/showrack/pkg/middleware"
)

// Upper bounds for the per-request recommendation overrides.
const (
	maxSeedOverride  = 10
	maxLimitOverride = 50
)

// RecommendationsHandler handles HTTP requests for recommendations.
type RecommendationsHandler struct {
	recommender *service.RecommenderService
	logger      *slog.Logger
}

// NewRecommendationsHandler creates a new recommendations HTTP handler.
func NewRecommendationsHandler(recommender *service.RecommenderService, logger *slog.Logger) *RecommendationsHandler {
	return &RecommendationsHandler{recommender: recommender, logger: logger}
}

// Get handles GET /api/v1/recommendations with optional seeds and limit
// query parameters. Out-of-range values are clamped rather than rejected.
func (h *RecommendationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var opts service.RecommendOptions
	if raw := r.URL.Query().Get("seeds"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			opts.SeedCount = clamp(n, 1, maxSeedOverride)
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			opts.MaxResults = clamp(n, 1, maxLimitOverride)
		}
	}

	set, err := h.recommender.Recommend(r.Context(), userID, opts)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: set})
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

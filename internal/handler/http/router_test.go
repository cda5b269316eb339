package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/showrack/showrack/internal/auth"
	"github.com/showrack/showrack/internal/catalog"
	"github.com/showrack/showrack/internal/domain"
	"github.com/showrack/showrack/internal/service"
	"github.com/showrack/showrack/pkg/health"
)

// trendingStubGateway serves a canned trending page for the public routes.
type trendingStubGateway struct {
	catalog.Gateway
}

func (s *trendingStubGateway) Trending(_ context.Context, kind catalog.Kind, _ int) (*catalog.Page, error) {
	return &catalog.Page{
		Page:         1,
		Results:      []catalog.Item{{ID: 603, Title: "The Matrix"}},
		TotalPages:   1,
		TotalResults: 1,
	}, nil
}

func newTestRouter(t *testing.T, repo *mockWishlistRepo, jwtManager *auth.JWTManager) http.Handler {
	t.Helper()
	return NewRouter(newTestRouterDeps(t, repo, jwtManager))
}

func newTestRouterDeps(t *testing.T, repo *mockWishlistRepo, jwtManager *auth.JWTManager) RouterDeps {
	t.Helper()
	gw := &trendingStubGateway{}
	log := testLogger()

	return RouterDeps{
		Users:         service.NewUserService(nil, jwtManager, nil, log),
		Wishlist:      service.NewWishlistService(repo, nil, log),
		Recommender:   service.NewRecommenderService(repo, gw, 5, 12, log),
		Assistant:     service.NewAssistantService(repo, gw, &stubLLM{answer: "ok"}, log),
		Catalog:       gw,
		JWTManager:    jwtManager,
		HealthHandler: health.NewHandler(),
		Logger:        log,
		CORS:          CORSConfig{Environment: "development"},
	}
}

func TestRouter_PublicCatalogRoute(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	router := newTestRouter(t, new(mockWishlistRepo), jwtManager)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies/trending", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The Matrix")
}

func TestRouter_WishlistRequiresAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	router := newTestRouter(t, new(mockWishlistRepo), jwtManager)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/wishlist", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_WishlistWithBearerToken(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	repo := new(mockWishlistRepo)
	repo.On("List", mock.Anything, int64(7)).Return([]domain.WishlistEntry{
		{UserID: 7, ItemID: 603},
	}, nil)
	router := newTestRouter(t, repo, jwtManager)

	token, err := jwtManager.GenerateAccessToken(7, "alice@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wishlist", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "603")
	repo.AssertExpectations(t)
}

func TestRouter_EmitsServerSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		tp.Shutdown(context.Background()) //nolint:errcheck
		otel.SetTracerProvider(prev)
	})

	jwtManager := auth.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	router := newTestRouter(t, new(mockWishlistRepo), jwtManager)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies/trending", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	spans := exporter.GetSpans()
	require.NotEmpty(t, spans, "expected a server span per request")
	assert.Equal(t, "GET /api/v1/movies/trending", spans[0].Name)
}

func TestRouter_CatalogRateLimit(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	deps := newTestRouterDeps(t, new(mockWishlistRepo), jwtManager)
	deps.RateLimitRPS = 1
	deps.RateLimitBurst = 2
	router := NewRouter(deps)

	var limited bool
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/trending", nil)
		req.RemoteAddr = "203.0.113.9:40000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited = true
			assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
			break
		}
	}
	assert.True(t, limited, "public catalog routes should rate limit per IP")

	// Routes outside the catalog group are not limited.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_HealthLive(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	router := newTestRouter(t, new(mockWishlistRepo), jwtManager)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

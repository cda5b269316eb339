package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/showrack/showrack/internal/auth"
	"github.com/showrack/showrack/internal/catalog"
	"github.com/showrack/showrack/internal/service"
	"github.com/showrack/showrack/pkg/health"
	"github.com/showrack/showrack/pkg/middleware"
)

// RouterDeps bundles everything the router wires together.
type RouterDeps struct {
	Users         *service.UserService
	Wishlist      *service.WishlistService
	Recommender   *service.RecommenderService
	Assistant     *service.AssistantService
	Catalog       catalog.Gateway
	JWTManager    *auth.JWTManager
	HealthHandler *health.Handler
	Logger        *slog.Logger
	CORS          CORSConfig

	// Per-IP rate limit for the public catalog routes. Zero disables it.
	RateLimitRPS   int
	RateLimitBurst int
}

// NewRouter creates a chi router with all service routes registered.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(CORS(deps.CORS))
	r.Use(middleware.Tracing())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.PrometheusMetrics("showrack"))
	r.Use(middleware.RequestLogger(deps.Logger))

	// Health check endpoints
	r.Get("/health/live", deps.HealthHandler.LivenessHandler())
	r.Get("/health/ready", deps.HealthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Auth endpoints (public)
	authHandler := NewAuthHandler(deps.Users, deps.Logger)
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.RefreshToken)
	})

	// Catalog browsing endpoints (public)
	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Logger)
	r.Route("/api/v1", func(r chi.Router) {
		// The catalog routes proxy straight to the upstream, so they carry
		// the per-IP rate limit.
		if deps.RateLimitRPS > 0 {
			r.Use(middleware.RateLimit(deps.RateLimitRPS, deps.RateLimitBurst, deps.Logger))
		}

		r.Get("/movies/trending", catalogHandler.Trending(catalog.KindMovie))
		r.Get("/movies/popular", catalogHandler.Popular(catalog.KindMovie))
		r.Get("/movies/{id}", catalogHandler.Details(catalog.KindMovie))
		r.Get("/movies/{id}/similar", catalogHandler.Similar(catalog.KindMovie))

		r.Get("/tv/trending", catalogHandler.Trending(catalog.KindTV))
		r.Get("/tv/popular", catalogHandler.Popular(catalog.KindTV))
		r.Get("/tv/{id}", catalogHandler.Details(catalog.KindTV))
		r.Get("/tv/{id}/similar", catalogHandler.Similar(catalog.KindTV))

		r.Get("/genres/{kind}", catalogHandler.Genres)
		r.Get("/search", catalogHandler.Search)
		r.Get("/discover/movies", catalogHandler.Discover(catalog.KindMovie))
		r.Get("/discover/tv", catalogHandler.Discover(catalog.KindTV))
	})

	// Token validator that bridges to the internal JWTManager.
	tokenValidator := func(token string) (*middleware.Claims, error) {
		claims, err := deps.JWTManager.ValidateAccessToken(token)
		if err != nil {
			return nil, err
		}
		return &middleware.Claims{
			UserID: claims.UserID,
			Email:  claims.Email,
		}, nil
	}

	// Wishlist, recommendations, and assistant endpoints (auth required)
	wishlistHandler := NewWishlistHandler(deps.Wishlist, deps.Logger)
	recsHandler := NewRecommendationsHandler(deps.Recommender, deps.Logger)
	chatHandler := NewChatHandler(deps.Assistant, deps.Logger)

	r.Route("/api/v1/wishlist", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(middleware.Auth(tokenValidator))

		r.Get("/", wishlistHandler.List)
		r.Post("/", wishlistHandler.Add)
		r.Delete("/{itemID}", wishlistHandler.Remove)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokenValidator))

		r.Get("/api/v1/recommendations", recsHandler.Get)
	})

	r.Route("/api/v1/chat", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(middleware.Auth(tokenValidator))

		r.Post("/", chatHandler.Ask)
	})

	return r
}

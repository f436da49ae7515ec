package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DurgamAbhilash44/blooging-backend/internal/api/handler"
	"github.com/DurgamAbhilash44/blooging-backend/internal/api/middleware"
	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
	"github.com/DurgamAbhilash44/blooging-backend/internal/core/service"
	mongodb "github.com/DurgamAbhilash44/blooging-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/DurgamAbhilash44/blooging-backend/internal/infrastructure/db/redis"
)

// Deps carries the external collaborators the router wires together.
type Deps struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	TokenTTL  time.Duration // zero means the service default
	Log       zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.Mongo)
	postRepo := mongodb.NewPostRepository(deps.Mongo)
	feedCache := redisdb.NewFeedCache(deps.Redis, deps.Log)

	tokens := service.NewTokenService(deps.JWTSecret, deps.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens)
	authority := service.NewRoleAuthority(userRepo)
	postService := service.NewPostService(postRepo, feedCache, deps.Log)
	userService := service.NewUserService(userRepo, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	userHandler := handler.NewUserHandler(userService)

	authn := middleware.Auth(tokens)
	anyRole := middleware.RBAC(authority, domain.RoleAdmin, domain.RoleUser)
	adminOnly := middleware.RBAC(authority, domain.RoleAdmin)

	// --- Auth routes (public) ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	// --- User routes ---
	e.GET("/api/profile", userHandler.Profile, authn)
	e.GET("/api/users", userHandler.List, authn, adminOnly)
	e.PUT("/api/users/:id", userHandler.Update, authn, adminOnly)
	e.DELETE("/api/users/:id", userHandler.Delete, authn, adminOnly)

	// --- Post routes ---
	// Feed is registered before the :status listing so it wins the match.
	e.GET("/api/posts/feed", postHandler.Feed, authn)
	e.GET("/api/posts/:status", postHandler.ListByStatus, authn, anyRole)
	e.POST("/api/posts", postHandler.Create, authn, anyRole)
	e.POST("/api/posts/:id/accept", postHandler.Accept, authn, adminOnly)
	e.POST("/api/posts/:id/reject", postHandler.Reject, authn, adminOnly)
	e.PUT("/api/posts/:id", postHandler.Update, authn, anyRole)
	e.DELETE("/api/posts/:id", postHandler.Delete, authn, anyRole)
	e.POST("/api/posts/:id/like", postHandler.ToggleLike, authn, anyRole)
	e.POST("/api/posts/:id/comments", postHandler.AddComment, authn, anyRole)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

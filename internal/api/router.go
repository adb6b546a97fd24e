package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/memberhub/portal/internal/api/handler"
	"github.com/memberhub/portal/internal/api/middleware"
	"github.com/memberhub/portal/internal/core/domain"
	"github.com/memberhub/portal/internal/core/service"
	mongodb "github.com/memberhub/portal/internal/infrastructure/db/mongo"
	redisdb "github.com/memberhub/portal/internal/infrastructure/db/redis"
	"github.com/memberhub/portal/internal/infrastructure/http/handlers"
	"github.com/memberhub/portal/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	sessions := redisdb.NewSessionStore(rdb)
	sessionManager := service.NewSessionManager(sessions, cfg.SessionSecret, cfg.SessionTTL)
	authService := service.NewAuthService(users, sessionManager)
	adminService := service.NewAdminService(users)

	authHandler := handler.NewAuthHandler(authService, sessionManager)
	pageHandler := handler.NewPageHandler()
	adminHandler := handler.NewAdminHandler(adminService)

	// --- Gates ---
	e.Use(middleware.Session(sessionManager))
	anonymous := middleware.Anonymous()
	authenticated := middleware.Authenticated()
	adminOnly := middleware.Role(domain.RoleAdmin)

	// --- Public / anonymous routes ---
	e.GET("/", pageHandler.Home, anonymous)
	e.GET("/signup", authHandler.SignupPage, anonymous)
	e.GET("/login", authHandler.LoginPage, anonymous)
	e.POST("/createUser", authHandler.CreateUser, anonymous)
	e.POST("/loginUser", authHandler.LoginUser, anonymous)

	// --- Authenticated routes ---
	e.GET("/members", pageHandler.Members, authenticated)
	e.GET("/admin", adminHandler.AdminPage, authenticated, adminOnly)
	e.POST("/promote", adminHandler.Promote, authenticated, adminOnly)
	e.POST("/demote", adminHandler.Demote, authenticated, adminOnly)

	e.GET("/logout", authHandler.Logout)

	// --- Static assets ---
	e.Static("/public", "web/public")

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/healthz", healthHandler.Liveness)
	e.GET("/healthz/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Catch-all ---
	e.RouteNotFound("/*", pageHandler.NotFound)

	return e, nil
}

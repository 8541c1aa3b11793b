package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sinarkarya/construction-system/docs"
	"github.com/sinarkarya/construction-system/internal/api/handler"
	"github.com/sinarkarya/construction-system/internal/api/middleware"
	"github.com/sinarkarya/construction-system/internal/core/domain"
	"github.com/sinarkarya/construction-system/internal/core/service"
	mongodb "github.com/sinarkarya/construction-system/internal/infrastructure/db/mongo"
	redisdb "github.com/sinarkarya/construction-system/internal/infrastructure/db/redis"
)

// RouterConfig carries the settings the router needs beyond its storage
// handles.
type RouterConfig struct {
	JWTSecret  string
	AdminEmail string
	SessionTTL time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("construction"))

	// --- Dependencies ---
	projectRepo := mongodb.NewProjectRepository(db)
	readStatusRepo := mongodb.NewReadStatusRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	revocationList := redisdb.NewRevocationList(rdb)

	sessionService := service.NewSessionService(cfg.JWTSecret, cfg.AdminEmail, cfg.SessionTTL, revocationList, log)
	guardService := service.NewGuardService(sessionService, projectRepo, log)
	directoryService := service.NewDirectoryService(sessionService, projectRepo)
	readStateService := service.NewReadStateService(projectRepo, readStatusRepo, log)
	accountService := service.NewAccountService(userRepo)
	projectService := service.NewProjectService(sessionService, projectRepo, readStatusRepo, log)

	authHandler := handler.NewAuthHandler(accountService, sessionService, cfg.SessionTTL)
	projectHandler := handler.NewProjectHandler(projectService, directoryService, readStateService, sessionService, cfg.SessionTTL)

	// --- API routes ---
	// Every /api request passes through the session middleware: resolve the
	// cookie, confirm the project binding, degrade silently to anonymous on
	// any failure. Whether an identity is then required is decided per route.
	apiGroup := e.Group("/api", middleware.Session(sessionService, guardService))

	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/auth/check", authHandler.Check)
	apiGroup.POST("/auth/logout", authHandler.Logout)

	projects := apiGroup.Group("/projects", middleware.RequireSession())
	projects.GET("/my-projects", projectHandler.MyProjects)
	projects.POST("/switch", projectHandler.Switch)
	projects.POST("/:id/read", projectHandler.MarkRead)
	projects.GET("/:id", projectHandler.Get)

	staffOnly := middleware.RequireRole(sessionService, domain.RoleAdmin, domain.RoleManager)
	projects.GET("", projectHandler.List, staffOnly)
	projects.POST("", projectHandler.Create, staffOnly)
	projects.PUT("/:id", projectHandler.Update, staffOnly)
	projects.DELETE("/:id", projectHandler.Delete, middleware.RequireRole(sessionService, domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

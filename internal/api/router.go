package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhub/todo-service/internal/api/handler"
	"github.com/taskhub/todo-service/internal/api/middleware"
	"github.com/taskhub/todo-service/internal/core/domain"
	"github.com/taskhub/todo-service/internal/core/service"
	"github.com/taskhub/todo-service/internal/infrastructure/config"
	mongorepo "github.com/taskhub/todo-service/internal/infrastructure/db/mongo"
	redisinfra "github.com/taskhub/todo-service/internal/infrastructure/db/redis"
	"github.com/taskhub/todo-service/internal/infrastructure/http/handlers"
	"github.com/taskhub/todo-service/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the audit dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("todo"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	todoRepo := mongorepo.NewTodoRepository(db)
	auditRepo := mongorepo.NewAuditRepository(db)

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	throttle := redisinfra.NewLoginThrottle(rdb, cfg.Throttle.MaxFailures, time.Duration(cfg.Throttle.WindowMinutes)*time.Minute)

	userService := service.NewUserService(userRepo, hasher, tokens, throttle,
		time.Duration(cfg.LoginTokenTTLMinutes)*time.Minute, log)
	todoService := service.NewTodoService(todoRepo, log)
	auditService := service.NewAuditService(auditRepo, log)

	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)

	userHandler := handler.NewUserHandler(userService, dispatcher)
	todoHandler := handler.NewTodoHandler(todoService, dispatcher)
	auditHandler := handler.NewAuditHandler(auditService)

	authRequired := middleware.Auth(tokens)
	adminOnly := middleware.RequireRole(userRepo, domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/", userHandler.Register)
	e.GET("/auth/", userHandler.List)
	e.PUT("/auth/:id", userHandler.Update)
	e.DELETE("/auth/:id", userHandler.Delete, authRequired)
	e.POST("/auth/token", userHandler.Login)

	// --- To-do routes (all owner-scoped behind auth) ---
	todo := e.Group("/todo", authRequired)
	todo.GET("/", todoHandler.List)
	todo.POST("/", todoHandler.Create)
	todo.PUT("/:id", todoHandler.Update)
	todo.DELETE("/:id", todoHandler.Delete)

	// --- Audit trail (admin only) ---
	e.GET("/audit/", auditHandler.Recent, authRequired, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}

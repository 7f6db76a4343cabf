package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SuzdalevAndrey/TaskManager/internal/di"
	"github.com/SuzdalevAndrey/TaskManager/internal/middleware"
	"github.com/SuzdalevAndrey/TaskManager/internal/service"
	"github.com/SuzdalevAndrey/TaskManager/pkg/config"
	"github.com/SuzdalevAndrey/TaskManager/pkg/database"
	"github.com/SuzdalevAndrey/TaskManager/pkg/logger"
	"github.com/SuzdalevAndrey/TaskManager/pkg/redis"
	"github.com/SuzdalevAndrey/TaskManager/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       cfg.App.LogLevel,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting Task Manager...")

	ctx := context.Background()

	// Initialize tracing
	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	}); err != nil {
		appLog.Fatal(fmt.Sprintf("Telemetry init failed: %v", err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = telemetry.Shutdown(shutdownCtx)
	}()

	// Initialize database connection
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        25,
		MinConns:        5,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	// Initialize Redis connection
	redisCfg := redis.DefaultConfig()
	redisCfg.Host = cfg.Redis.Host
	redisCfg.Port = cfg.Redis.Port
	redisCfg.Password = cfg.Redis.Password
	redisCfg.DB = cfg.Redis.DB
	redisClient, err := redis.NewClient(ctx, redisCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Redis connection failed: %v", err))
	}
	defer redisClient.Close()
	appLog.Info(fmt.Sprintf("Redis connected at %s", redisCfg.Addr()))

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		DB:                db,
		Redis:             redisClient,
		JWTSecret:         cfg.JWT.Secret,
		AccessTokenTTL:    cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL:   cfg.JWT.RefreshTokenTTL,
		AuthServiceConfig: &service.AuthServiceConfig{BcryptCost: 12},
	})

	// Self-provision the admin account
	if err := container.AuthService.BootstrapAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		appLog.Fatal(fmt.Sprintf("Admin bootstrap failed: %v", err))
	}

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Authenticate(container.Validator))

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	// API routes
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", container.AuthHandler.Register)
			auth.POST("/login", container.AuthHandler.Login)
			auth.POST("/refresh", container.AuthHandler.Refresh)
			auth.POST("/logout", middleware.RequireAuth(), container.AuthHandler.Logout)
		}

		tasks := v1.Group("/tasks")
		{
			tasks.GET("", middleware.RequireAdmin(), container.TaskHandler.List)
			tasks.POST("", middleware.RequireAdmin(), container.TaskHandler.Create)
			tasks.GET("/assigned-to-me", middleware.RequireAuth(), container.TaskHandler.ListAssignedToMe)
			tasks.GET("/:id", middleware.RequireAuth(), container.TaskHandler.GetByID)
			tasks.PATCH("/:id", middleware.RequireAdmin(), container.TaskHandler.Update)
			tasks.PATCH("/:id/status", middleware.RequireAuth(), container.TaskHandler.UpdateStatus)
			tasks.PATCH("/:id/priority", middleware.RequireAdmin(), container.TaskHandler.UpdatePriority)
			tasks.PATCH("/:id/assignee", middleware.RequireAdmin(), container.TaskHandler.UpdateAssignee)
			tasks.DELETE("/:id", middleware.RequireAdmin(), container.TaskHandler.Delete)

			tasks.GET("/:id/comments", middleware.RequireAuth(), container.CommentHandler.ListByTask)
			tasks.POST("/:id/comments", middleware.RequireAuth(), container.CommentHandler.Create)
		}

		comments := v1.Group("/comments")
		{
			comments.DELETE("/:id", middleware.RequireAuth(), container.CommentHandler.Delete)
		}

		users := v1.Group("/users")
		{
			users.GET("", middleware.RequireAdmin(), container.UserHandler.List)
			users.PATCH("/:id/role", middleware.RequireAdmin(), container.UserHandler.PromoteToAdmin)
		}
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("Task Manager listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}

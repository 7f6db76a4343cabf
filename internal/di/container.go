package di

import (
	"time"

	"github.com/SuzdalevAndrey/TaskManager/internal/handler"
	"github.com/SuzdalevAndrey/TaskManager/internal/repository"
	"github.com/SuzdalevAndrey/TaskManager/internal/service"
	"github.com/SuzdalevAndrey/TaskManager/internal/token"
	"github.com/SuzdalevAndrey/TaskManager/pkg/database"
	"github.com/SuzdalevAndrey/TaskManager/pkg/redis"
)

// Container holds all dependencies for the task manager
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Token components
	Codec     *token.Codec
	Store     token.Store
	Validator *token.Validator

	// Repositories
	UserRepo    repository.UserRepository
	TaskRepo    repository.TaskRepository
	CommentRepo repository.CommentRepository

	// Services
	AuthService    service.AuthService
	TaskService    service.TaskService
	CommentService service.CommentService
	UserService    service.UserService

	// Handlers
	HealthHandler  *handler.HealthHandler
	AuthHandler    *handler.AuthHandler
	TaskHandler    *handler.TaskHandler
	CommentHandler *handler.CommentHandler
	UserHandler    *handler.UserHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB                *database.PostgresDB
	Redis             *redis.Client
	JWTSecret         string
	AccessTokenTTL    time.Duration
	RefreshTokenTTL   time.Duration
	AuthServiceConfig *service.AuthServiceConfig
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	// Token components
	c.Codec = token.NewCodec(cfg.JWTSecret)
	c.Store = token.NewRedisStore(cfg.Redis.Client(), cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	c.Validator = token.NewValidator(c.Codec, c.Store)

	// Repositories
	c.UserRepo = repository.NewPostgresUserRepository(cfg.DB.Pool())
	c.TaskRepo = repository.NewPostgresTaskRepository(cfg.DB.Pool())
	c.CommentRepo = repository.NewPostgresCommentRepository(cfg.DB.Pool())

	// Services
	c.AuthService = service.NewAuthService(c.UserRepo, c.Codec, c.Store, c.Validator, cfg.AuthServiceConfig)
	c.TaskService = service.NewTaskService(c.TaskRepo, c.UserRepo)
	c.CommentService = service.NewCommentService(c.CommentRepo, c.TaskRepo, c.UserRepo)
	c.UserService = service.NewUserService(c.UserRepo)

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.TaskHandler = handler.NewTaskHandler(c.TaskService)
	c.CommentHandler = handler.NewCommentHandler(c.CommentService)
	c.UserHandler = handler.NewUserHandler(c.UserService)

	return c
}

package repository

import (
	"context"

	"github.com/SuzdalevAndrey/TaskManager/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID, (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail retrieves a user by email, (nil, nil) when absent
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// ExistsByEmail checks if a user exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Update updates a user
	Update(ctx context.Context, user *domain.User) error
	// List retrieves all users
	List(ctx context.Context) ([]*domain.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *domain.Task) error
	// GetByID retrieves a task by ID, (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// Update updates a task
	Update(ctx context.Context, task *domain.Task) error
	// Delete deletes a task and its comments
	Delete(ctx context.Context, id string) error
	// List retrieves tasks matching the filter plus the unpaged total
	List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, int64, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(ctx context.Context, comment *domain.Comment) error
	// GetByID retrieves a comment by ID, (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	// ListByTaskID retrieves all comments for a task
	ListByTaskID(ctx context.Context, taskID string) ([]*domain.Comment, error)
	// Delete deletes a comment
	Delete(ctx context.Context, id string) error
}

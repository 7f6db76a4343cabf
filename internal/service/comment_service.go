package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SuzdalevAndrey/TaskManager/internal/domain"
	"github.com/SuzdalevAndrey/TaskManager/internal/dto"
	"github.com/SuzdalevAndrey/TaskManager/internal/repository"
)

// CommentService defines the interface for comment operations.
//
// Commenting on a task requires access to the task itself; deleting a
// comment requires authorship (or the admin role). Existence is
// checked before either policy.
type CommentService interface {
	// Create adds a comment to a task the principal can access
	Create(ctx context.Context, p domain.Principal, taskID string, req *dto.CreateCommentRequest) (*domain.Comment, error)
	// ListByTask retrieves the comments of a task the principal can access
	ListByTask(ctx context.Context, p domain.Principal, taskID string) ([]*domain.Comment, error)
	// Delete deletes a comment the principal authored
	Delete(ctx context.Context, p domain.Principal, id string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	userRepo    repository.UserRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository, taskRepo repository.TaskRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

// Create adds a comment to a task the principal can access
func (s *commentService) Create(ctx context.Context, p domain.Principal, taskID string, req *dto.CreateCommentRequest) (*domain.Comment, error) {
	if err := s.checkTaskAccess(ctx, p, taskID); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUnauthenticated
	}

	comment := &domain.Comment{
		ID:          uuid.New().String(),
		Content:     req.Content,
		CreatedAt:   time.Now().Truncate(time.Second),
		TaskID:      taskID,
		AuthorID:    author.ID,
		AuthorEmail: author.Email,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByTask retrieves the comments of a task the principal can access
func (s *commentService) ListByTask(ctx context.Context, p domain.Principal, taskID string) ([]*domain.Comment, error) {
	if err := s.checkTaskAccess(ctx, p, taskID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByTaskID(ctx, taskID)
}

// Delete deletes a comment the principal authored
func (s *commentService) Delete(ctx context.Context, p domain.Principal, id string) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if !CanAccessComment(p, comment) {
		return ErrAccessDenied
	}
	return s.commentRepo.Delete(ctx, id)
}

func (s *commentService) checkTaskAccess(ctx context.Context, p domain.Principal, taskID string) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}
	if !CanAccessTask(p, task) {
		return ErrAccessDenied
	}
	return nil
}

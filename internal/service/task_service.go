package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SuzdalevAndrey/TaskManager/internal/domain"
	"github.com/SuzdalevAndrey/TaskManager/internal/dto"
	"github.com/SuzdalevAndrey/TaskManager/internal/repository"
)

// TaskService defines the interface for task operations.
//
// Role gating (admin-only routes) happens in the middleware; the
// ownership checks on single-resource reads and status updates happen
// here, after the existence check, so a missing task is always a
// not-found before it can be a permission failure.
type TaskService interface {
	// Create creates a task authored by the principal
	Create(ctx context.Context, p domain.Principal, req *dto.CreateTaskRequest) (*domain.Task, error)
	// GetByID retrieves a task, enforcing the ownership policy
	GetByID(ctx context.Context, p domain.Principal, id string) (*domain.Task, error)
	// List retrieves tasks matching the filter plus the unpaged total
	List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, int64, error)
	// ListAssignedTo retrieves the principal's assigned tasks,
	// filtered server-side rather than post-filtered per item
	ListAssignedTo(ctx context.Context, p domain.Principal, filter domain.TaskFilter) ([]*domain.Task, int64, error)
	// UpdatePartial applies the non-nil fields of the request
	UpdatePartial(ctx context.Context, id string, req *dto.UpdateTaskRequest) (*domain.Task, error)
	// UpdateStatus updates the status, enforcing the ownership policy
	UpdateStatus(ctx context.Context, p domain.Principal, id string, status domain.TaskStatus) (*domain.Task, error)
	// UpdatePriority updates the priority
	UpdatePriority(ctx context.Context, id string, priority domain.TaskPriority) (*domain.Task, error)
	// UpdateAssignee reassigns the task
	UpdateAssignee(ctx context.Context, id, assigneeID string) (*domain.Task, error)
	// Delete deletes a task
	Delete(ctx context.Context, id string) error
}

type taskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// Create creates a task authored by the principal
func (s *taskService) Create(ctx context.Context, p domain.Principal, req *dto.CreateTaskRequest) (*domain.Task, error) {
	author, err := s.userRepo.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUnauthenticated
	}

	task := &domain.Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		CreatedAt:   time.Now().Truncate(time.Second),
		AuthorID:    author.ID,
	}

	if req.AssigneeID != "" {
		assignee, err := s.userRepo.GetByID(ctx, req.AssigneeID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, ErrUserNotFound
		}
		task.AssigneeID = assignee.ID
		task.AssigneeEmail = assignee.Email
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetByID retrieves a task, enforcing the ownership policy
func (s *taskService) GetByID(ctx context.Context, p domain.Principal, id string) (*domain.Task, error) {
	task, err := s.getTaskOrNotFound(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanAccessTask(p, task) {
		return nil, ErrAccessDenied
	}
	return task, nil
}

// List retrieves tasks matching the filter
func (s *taskService) List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, int64, error) {
	return s.taskRepo.List(ctx, filter)
}

// ListAssignedTo retrieves the principal's assigned tasks
func (s *taskService) ListAssignedTo(ctx context.Context, p domain.Principal, filter domain.TaskFilter) ([]*domain.Task, int64, error) {
	user, err := s.userRepo.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, ErrUnauthenticated
	}

	filter.AssigneeID = user.ID
	filter.AuthorID = ""
	return s.taskRepo.List(ctx, filter)
}

// UpdatePartial applies the non-nil fields of the request
func (s *taskService) UpdatePartial(ctx context.Context, id string, req *dto.UpdateTaskRequest) (*domain.Task, error) {
	task, err := s.getTaskOrNotFound(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		task.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.AssigneeID != nil {
		assignee, err := s.userRepo.GetByID(ctx, *req.AssigneeID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, ErrUserNotFound
		}
		task.AssigneeID = assignee.ID
		task.AssigneeEmail = assignee.Email
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateStatus updates the status, enforcing the ownership policy
func (s *taskService) UpdateStatus(ctx context.Context, p domain.Principal, id string, status domain.TaskStatus) (*domain.Task, error) {
	task, err := s.getTaskOrNotFound(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanAccessTask(p, task) {
		return nil, ErrAccessDenied
	}

	task.Status = status
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdatePriority updates the priority
func (s *taskService) UpdatePriority(ctx context.Context, id string, priority domain.TaskPriority) (*domain.Task, error) {
	task, err := s.getTaskOrNotFound(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Priority = priority
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateAssignee reassigns the task
func (s *taskService) UpdateAssignee(ctx context.Context, id, assigneeID string) (*domain.Task, error) {
	task, err := s.getTaskOrNotFound(ctx, id)
	if err != nil {
		return nil, err
	}

	assignee, err := s.userRepo.GetByID(ctx, assigneeID)
	if err != nil {
		return nil, err
	}
	if assignee == nil {
		return nil, ErrUserNotFound
	}

	task.AssigneeID = assignee.ID
	task.AssigneeEmail = assignee.Email
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete deletes a task
func (s *taskService) Delete(ctx context.Context, id string) error {
	if _, err := s.getTaskOrNotFound(ctx, id); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, id)
}

func (s *taskService) getTaskOrNotFound(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

package dto

import (
	"time"

	"github.com/SuzdalevAndrey/TaskManager/internal/domain"
)

// CreateTaskRequest represents task creation request
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Status      string `json:"status" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
	AssigneeID  string `json:"assignee_id"`
}

// Validate checks the enum fields beyond what binding tags cover
func (r *CreateTaskRequest) Validate() (bool, string) {
	if !domain.TaskStatus(r.Status).Valid() {
		return false, "status must be one of WAITING, IN_PROGRESS, COMPLETED"
	}
	if !domain.TaskPriority(r.Priority).Valid() {
		return false, "priority must be one of HIGH, MEDIUM, LOW"
	}
	return true, ""
}

// UpdateTaskRequest represents partial task update request.
// Nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssigneeID  *string `json:"assignee_id"`
}

// Validate checks present fields
func (r *UpdateTaskRequest) Validate() (bool, string) {
	if r.Title != nil && (*r.Title == "" || len(*r.Title) > 255) {
		return false, "title must be non-empty and at most 255 characters"
	}
	if r.Description != nil && len(*r.Description) > 1000 {
		return false, "description must be at most 1000 characters"
	}
	if r.Status != nil && !domain.TaskStatus(*r.Status).Valid() {
		return false, "status must be one of WAITING, IN_PROGRESS, COMPLETED"
	}
	if r.Priority != nil && !domain.TaskPriority(*r.Priority).Valid() {
		return false, "priority must be one of HIGH, MEDIUM, LOW"
	}
	return true, ""
}

// UpdateStatusRequest represents status update request
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Validate checks the status value
func (r *UpdateStatusRequest) Validate() (bool, string) {
	if !domain.TaskStatus(r.Status).Valid() {
		return false, "status must be one of WAITING, IN_PROGRESS, COMPLETED"
	}
	return true, ""
}

// UpdatePriorityRequest represents priority update request
type UpdatePriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

// Validate checks the priority value
func (r *UpdatePriorityRequest) Validate() (bool, string) {
	if !domain.TaskPriority(r.Priority).Valid() {
		return false, "priority must be one of HIGH, MEDIUM, LOW"
	}
	return true, ""
}

// UpdateAssigneeRequest represents assignee update request
type UpdateAssigneeRequest struct {
	AssigneeID string `json:"assignee_id" binding:"required"`
}

// TaskFilterRequest represents list filter query parameters
type TaskFilterRequest struct {
	Status     string `form:"status"`
	Priority   string `form:"priority"`
	AuthorID   string `form:"author_id"`
	AssigneeID string `form:"assignee_id"`
	Page       int    `form:"page"`
	Size       int    `form:"size"`
}

// Validate checks filter enum values and pagination bounds
func (r *TaskFilterRequest) Validate() (bool, string) {
	if r.Status != "" && !domain.TaskStatus(r.Status).Valid() {
		return false, "status must be one of WAITING, IN_PROGRESS, COMPLETED"
	}
	if r.Priority != "" && !domain.TaskPriority(r.Priority).Valid() {
		return false, "priority must be one of HIGH, MEDIUM, LOW"
	}
	if r.Page < 0 {
		return false, "page must not be negative"
	}
	if r.Size < 0 {
		return false, "size must not be negative"
	}
	return true, ""
}

// ToFilter converts the request into a domain filter with defaults applied
func (r *TaskFilterRequest) ToFilter() domain.TaskFilter {
	size := r.Size
	if size == 0 {
		size = 10
	}
	return domain.TaskFilter{
		Status:     domain.TaskStatus(r.Status),
		Priority:   domain.TaskPriority(r.Priority),
		AuthorID:   r.AuthorID,
		AssigneeID: r.AssigneeID,
		Page:       r.Page,
		Size:       size,
	}
}

// TaskResponse represents task data in responses
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	CreatedAt   string `json:"created_at"`
	AuthorID    string `json:"author_id"`
	AssigneeID  string `json:"assignee_id,omitempty"`
}

// ToTaskResponse converts a Task to its response representation
func ToTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		AuthorID:    task.AuthorID,
		AssigneeID:  task.AssigneeID,
	}
}

// ToTaskResponses converts a task slice to response representations
func ToTaskResponses(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, ToTaskResponse(task))
	}
	return out
}

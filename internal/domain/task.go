package domain

import (
	"time"
)

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	TaskStatusWaiting    TaskStatus = "WAITING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// Valid reports whether s is one of the known statuses
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusWaiting, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// TaskPriority represents task priority
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityLow    TaskPriority = "LOW"
)

// Valid reports whether p is one of the known priorities
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

// Task represents a task entity. AssigneeEmail is denormalized from the
// assignee record so ownership checks do not need a second lookup.
type Task struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	Status        TaskStatus   `json:"status"`
	Priority      TaskPriority `json:"priority"`
	CreatedAt     time.Time    `json:"created_at"`
	AuthorID      string       `json:"author_id"`
	AssigneeID    string       `json:"assignee_id,omitempty"`
	AssigneeEmail string       `json:"-"`
}

// TaskFilter narrows task listings. Zero values mean "no filter".
type TaskFilter struct {
	Status     TaskStatus
	Priority   TaskPriority
	AuthorID   string
	AssigneeID string
	Page       int
	Size       int
}

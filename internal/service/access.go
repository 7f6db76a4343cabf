package service

import (
	"github.com/SuzdalevAndrey/TaskManager/internal/domain"
)

// CanAccessTask reports whether the principal may read or mutate the task:
// admins always, users only when they are the task's assignee.
func CanAccessTask(p domain.Principal, task *domain.Task) bool {
	if p.IsAdmin() {
		return true
	}
	return p.Role == domain.RoleUser &&
		task.AssigneeEmail != "" &&
		task.AssigneeEmail == p.Email
}

// CanAccessComment reports whether the principal may act on the comment:
// admins always, users only when they authored it.
func CanAccessComment(p domain.Principal, comment *domain.Comment) bool {
	if p.IsAdmin() {
		return true
	}
	return p.Role == domain.RoleUser &&
		comment.AuthorEmail != "" &&
		comment.AuthorEmail == p.Email
}

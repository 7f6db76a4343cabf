package service

import (
	"testing"

	"github.com/SuzdalevAndrey/TaskManager/internal/domain"
)

func TestCanAccessTask(t *testing.T) {
	admin := domain.Principal{Email: "admin@example.com", Role: domain.RoleAdmin}
	alice := domain.Principal{Email: "alice@example.com", Role: domain.RoleUser}
	bob := domain.Principal{Email: "bob@example.com", Role: domain.RoleUser}

	tests := []struct {
		name string
		p    domain.Principal
		task *domain.Task
		want bool
	}{
		{
			name: "admin accesses any task",
			p:    admin,
			task: &domain.Task{AssigneeEmail: "bob@example.com"},
			want: true,
		},
		{
			name: "admin accesses unassigned task",
			p:    admin,
			task: &domain.Task{},
			want: true,
		},
		{
			name: "assignee accesses own task",
			p:    alice,
			task: &domain.Task{AssigneeEmail: "alice@example.com"},
			want: true,
		},
		{
			name: "user denied on another assignee's task",
			p:    bob,
			task: &domain.Task{AssigneeEmail: "alice@example.com"},
			want: false,
		},
		{
			name: "user denied on unassigned task",
			p:    alice,
			task: &domain.Task{},
			want: false,
		},
		{
			name: "anonymous denied",
			p:    domain.Principal{},
			task: &domain.Task{AssigneeEmail: "alice@example.com"},
			want: false,
		},
		{
			name: "empty email does not match unassigned task",
			p:    domain.Principal{Role: domain.RoleUser},
			task: &domain.Task{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessTask(tt.p, tt.task); got != tt.want {
				t.Errorf("CanAccessTask() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanAccessComment(t *testing.T) {
	admin := domain.Principal{Email: "admin@example.com", Role: domain.RoleAdmin}
	alice := domain.Principal{Email: "alice@example.com", Role: domain.RoleUser}
	bob := domain.Principal{Email: "bob@example.com", Role: domain.RoleUser}

	tests := []struct {
		name    string
		p       domain.Principal
		comment *domain.Comment
		want    bool
	}{
		{
			name:    "admin accesses any comment",
			p:       admin,
			comment: &domain.Comment{AuthorEmail: "alice@example.com"},
			want:    true,
		},
		{
			name:    "author accesses own comment",
			p:       alice,
			comment: &domain.Comment{AuthorEmail: "alice@example.com"},
			want:    true,
		},
		{
			name:    "user denied on another author's comment",
			p:       bob,
			comment: &domain.Comment{AuthorEmail: "alice@example.com"},
			want:    false,
		},
		{
			name:    "anonymous denied",
			p:       domain.Principal{},
			comment: &domain.Comment{AuthorEmail: "alice@example.com"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessComment(tt.p, tt.comment); got != tt.want {
				t.Errorf("CanAccessComment() = %v, want %v", got, tt.want)
			}
		})
	}
}

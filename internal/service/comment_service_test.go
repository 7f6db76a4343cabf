package service

import (
	"context"
	"errors"
	"testing"

	"github.com/SuzdalevAndrey/TaskManager/internal/domain"
	"github.com/SuzdalevAndrey/TaskManager/internal/dto"
)

type commentFixture struct {
	*taskFixture
	svc      CommentService
	comments *mockCommentRepository
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()
	tf := newTaskFixture(t)
	comments := newMockCommentRepository()
	return &commentFixture{
		taskFixture: tf,
		svc:         NewCommentService(comments, tf.tasks, tf.users),
		comments:    comments,
	}
}

func TestCommentService_Create(t *testing.T) {
	t.Run("assignee comments on own task", func(t *testing.T) {
		f := newCommentFixture(t)
		admin := f.addUser(t, "admin@example.com", domain.RoleAdmin)
		alice := f.addUser(t, "alice@example.com", domain.RoleUser)
		task := f.addTask(t, admin, alice)

		comment, err := f.svc.Create(context.Background(), principalFor(alice), task.ID, &dto.CreateCommentRequest{
			Content: "started on this",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if comment.AuthorID != alice.ID || comment.AuthorEmail != alice.Email {
			t.Errorf("author = %q/%q", comment.AuthorID, comment.AuthorEmail)
		}
		if comment.TaskID != task.ID {
			t.Errorf("task = %q, want %q", comment.TaskID, task.ID)
		}
	})

	t.Run("non-assignee is denied", func(t *testing.T) {
		f := newCommentFixture(t)
		admin := f.addUser(t, "admin@example.com", domain.RoleAdmin)
		alice := f.addUser(t, "alice@example.com", domain.RoleUser)
		bob := f.addUser(t, "bob@example.com", domain.RoleUser)
		task := f.addTask(t, admin, alice)

		_, err := f.svc.Create(context.Background(), principalFor(bob), task.ID, &dto.CreateCommentRequest{
			Content: "not my task",
		})
		if !errors.Is(err, ErrAccessDenied) {
			t.Errorf("error = %v, want ErrAccessDenied", err)
		}
	})

	t.Run("missing task", func(t *testing.T) {
		f := newCommentFixture(t)
		alice := f.addUser(t, "alice@example.com", domain.RoleUser)

		_, err := f.svc.Create(context.Background(), principalFor(alice), "missing", &dto.CreateCommentRequest{
			Content: "hello",
		})
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("error = %v, want ErrTaskNotFound", err)
		}
	})
}

func TestCommentService_ListByTask(t *testing.T) {
	f := newCommentFixture(t)
	admin := f.addUser(t, "admin@example.com", domain.RoleAdmin)
	alice := f.addUser(t, "alice@example.com", domain.RoleUser)
	bob := f.addUser(t, "bob@example.com", domain.RoleUser)
	task := f.addTask(t, admin, alice)

	for _, content := range []string{"first", "second"} {
		if _, err := f.svc.Create(context.Background(), principalFor(alice), task.ID, &dto.CreateCommentRequest{Content: content}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	t.Run("assignee lists comments", func(t *testing.T) {
		got, err := f.svc.ListByTask(context.Background(), principalFor(alice), task.ID)
		if err != nil {
			t.Fatalf("ListByTask() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("got %d comments, want 2", len(got))
		}
	})

	t.Run("admin lists comments", func(t *testing.T) {
		if _, err := f.svc.ListByTask(context.Background(), principalFor(admin), task.ID); err != nil {
			t.Errorf("ListByTask() error = %v", err)
		}
	})

	t.Run("non-assignee is denied", func(t *testing.T) {
		_, err := f.svc.ListByTask(context.Background(), principalFor(bob), task.ID)
		if !errors.Is(err, ErrAccessDenied) {
			t.Errorf("error = %v, want ErrAccessDenied", err)
		}
	})
}

func TestCommentService_Delete(t *testing.T) {
	f := newCommentFixture(t)
	admin := f.addUser(t, "admin@example.com", domain.RoleAdmin)
	alice := f.addUser(t, "alice@example.com", domain.RoleUser)
	bob := f.addUser(t, "bob@example.com", domain.RoleUser)
	task := f.addTask(t, admin, alice)

	newComment := func(t *testing.T) *domain.Comment {
		t.Helper()
		comment, err := f.svc.Create(context.Background(), principalFor(alice), task.ID, &dto.CreateCommentRequest{Content: "note"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		return comment
	}

	t.Run("author deletes own comment", func(t *testing.T) {
		comment := newComment(t)
		if err := f.svc.Delete(context.Background(), principalFor(alice), comment.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		got, _ := f.comments.GetByID(context.Background(), comment.ID)
		if got != nil {
			t.Error("comment still present after delete")
		}
	})

	t.Run("admin deletes any comment", func(t *testing.T) {
		comment := newComment(t)
		if err := f.svc.Delete(context.Background(), principalFor(admin), comment.ID); err != nil {
			t.Errorf("Delete() error = %v", err)
		}
	})

	t.Run("non-author is denied", func(t *testing.T) {
		comment := newComment(t)
		err := f.svc.Delete(context.Background(), principalFor(bob), comment.ID)
		if !errors.Is(err, ErrAccessDenied) {
			t.Errorf("error = %v, want ErrAccessDenied", err)
		}
	})

	t.Run("missing comment", func(t *testing.T) {
		err := f.svc.Delete(context.Background(), principalFor(bob), "missing")
		if !errors.Is(err, ErrCommentNotFound) {
			t.Errorf("error = %v, want ErrCommentNotFound", err)
		}
	})
}

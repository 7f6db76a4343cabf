package domain

import (
	"time"
)

// Comment represents a comment on a task. AuthorEmail is denormalized from
// the author record so ownership checks do not need a second lookup.
type Comment struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	TaskID      string    `json:"task_id"`
	AuthorID    string    `json:"author_id"`
	AuthorEmail string    `json:"-"`
}

package dto

import (
	"time"

	"github.com/SuzdalevAndrey/TaskManager/internal/domain"
)

// CreateCommentRequest represents comment creation request
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// CommentResponse represents comment data in responses
type CommentResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	TaskID    string `json:"task_id"`
	AuthorID  string `json:"author_id"`
}

// ToCommentResponse converts a Comment to its response representation
func ToCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		TaskID:    comment.TaskID,
		AuthorID:  comment.AuthorID,
	}
}

// ToCommentResponses converts a comment slice to response representations
func ToCommentResponses(comments []*domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, ToCommentResponse(comment))
	}
	return out
}

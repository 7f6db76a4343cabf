package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SuzdalevAndrey/TaskManager/internal/dto"
	"github.com/SuzdalevAndrey/TaskManager/internal/middleware"
	"github.com/SuzdalevAndrey/TaskManager/internal/service"
	"github.com/SuzdalevAndrey/TaskManager/pkg/logger"
	"github.com/SuzdalevAndrey/TaskManager/pkg/response"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create handles POST /api/v1/tasks/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), p, c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, dto.ToCommentResponse(comment))
}

// ListByTask handles GET /api/v1/tasks/:id/comments
func (h *CommentHandler) ListByTask(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	comments, err := h.commentService.ListByTask(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, dto.ToCommentResponses(comments))
}

// Delete handles DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	if err := h.commentService.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "comment deleted"})
}

func (h *CommentHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		response.NotFound(c, "TASK_NOT_FOUND", "task not found")
	case errors.Is(err, service.ErrCommentNotFound):
		response.NotFound(c, "COMMENT_NOT_FOUND", "comment not found")
	case errors.Is(err, service.ErrAccessDenied):
		response.Forbidden(c, "ACCESS_DENIED", "you do not have access to this resource")
	case errors.Is(err, service.ErrUnauthenticated):
		response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
	default:
		logger.Get().Error("comment operation failed", zap.Error(err))
		response.InternalError(c, err)
	}
}

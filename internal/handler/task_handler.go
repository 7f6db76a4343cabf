package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SuzdalevAndrey/TaskManager/internal/domain"
	"github.com/SuzdalevAndrey/TaskManager/internal/dto"
	"github.com/SuzdalevAndrey/TaskManager/internal/middleware"
	"github.com/SuzdalevAndrey/TaskManager/internal/service"
	"github.com/SuzdalevAndrey/TaskManager/pkg/logger"
	"github.com/SuzdalevAndrey/TaskManager/pkg/response"
)

// TaskHandler handles task endpoints
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Create handles POST /api/v1/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), p, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, dto.ToTaskResponse(task))
}

// GetByID handles GET /api/v1/tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	task, err := h.taskService.GetByID(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, dto.ToTaskResponse(task))
}

// List handles GET /api/v1/tasks
func (h *TaskHandler) List(c *gin.Context) {
	var req dto.TaskFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	filter := req.ToFilter()
	tasks, total, err := h.taskService.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessPage(c, dto.ToTaskResponses(tasks), pageMeta(filter, total))
}

// ListAssignedToMe handles GET /api/v1/tasks/assigned-to-me
func (h *TaskHandler) ListAssignedToMe(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	var req dto.TaskFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	filter := req.ToFilter()
	tasks, total, err := h.taskService.ListAssignedTo(c.Request.Context(), p, filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.SuccessPage(c, dto.ToTaskResponses(tasks), pageMeta(filter, total))
}

// Update handles PATCH /api/v1/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	task, err := h.taskService.UpdatePartial(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, dto.ToTaskResponse(task))
}

// UpdateStatus handles PATCH /api/v1/tasks/:id/status
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	task, err := h.taskService.UpdateStatus(c.Request.Context(), p, c.Param("id"), domain.TaskStatus(req.Status))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, dto.ToTaskResponse(task))
}

// UpdatePriority handles PATCH /api/v1/tasks/:id/priority
func (h *TaskHandler) UpdatePriority(c *gin.Context) {
	var req dto.UpdatePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	task, err := h.taskService.UpdatePriority(c.Request.Context(), c.Param("id"), domain.TaskPriority(req.Priority))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, dto.ToTaskResponse(task))
}

// UpdateAssignee handles PATCH /api/v1/tasks/:id/assignee
func (h *TaskHandler) UpdateAssignee(c *gin.Context) {
	var req dto.UpdateAssigneeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.UpdateAssignee(c.Request.Context(), c.Param("id"), req.AssigneeID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, dto.ToTaskResponse(task))
}

// Delete handles DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.taskService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "task deleted"})
}

func (h *TaskHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		response.NotFound(c, "TASK_NOT_FOUND", "task not found")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "USER_NOT_FOUND", "user not found")
	case errors.Is(err, service.ErrAccessDenied):
		response.Forbidden(c, "ACCESS_DENIED", "you do not have access to this task")
	case errors.Is(err, service.ErrUnauthenticated):
		response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
	default:
		logger.Get().Error("task operation failed", zap.Error(err))
		response.InternalError(c, err)
	}
}

func pageMeta(filter domain.TaskFilter, total int64) response.Page {
	pages := 0
	if filter.Size > 0 {
		pages = int((total + int64(filter.Size) - 1) / int64(filter.Size))
	}
	return response.Page{
		Page:       filter.Page,
		Size:       filter.Size,
		TotalItems: total,
		TotalPages: pages,
	}
}

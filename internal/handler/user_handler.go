package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SuzdalevAndrey/TaskManager/internal/dto"
	"github.com/SuzdalevAndrey/TaskManager/internal/service"
	"github.com/SuzdalevAndrey/TaskManager/pkg/logger"
	"github.com/SuzdalevAndrey/TaskManager/pkg/response"
)

// UserHandler handles user administration endpoints
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		logger.Get().Error("list users failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, dto.ToUserResponse(user))
	}
	response.Success(c, out)
}

// PromoteToAdmin handles PATCH /api/v1/users/:id/role
func (h *UserHandler) PromoteToAdmin(c *gin.Context) {
	user, err := h.userService.PromoteToAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "USER_NOT_FOUND", "user not found")
			return
		}
		logger.Get().Error("promote user failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, dto.ToUserResponse(user))
}

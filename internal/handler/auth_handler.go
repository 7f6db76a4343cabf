package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SuzdalevAndrey/TaskManager/internal/dto"
	"github.com/SuzdalevAndrey/TaskManager/internal/middleware"
	"github.com/SuzdalevAndrey/TaskManager/internal/service"
	"github.com/SuzdalevAndrey/TaskManager/internal/token"
	"github.com/SuzdalevAndrey/TaskManager/pkg/logger"
	"github.com/SuzdalevAndrey/TaskManager/pkg/response"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			response.Conflict(c, "USER_ALREADY_EXISTS", "a user with this email already exists")
			return
		}
		logger.Get().Error("register failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}

	response.Created(c, dto.RegisterResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "INVALID_CREDENTIALS", "email or password is incorrect")
			return
		}
		logger.Get().Error("login failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, token.ErrInvalidRefreshToken) {
			response.Conflict(c, "INVALID_REFRESH_TOKEN", "refresh token is invalid or revoked")
			return
		}
		logger.Get().Error("refresh failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}

	response.Success(c, dto.RefreshTokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), p); err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
			return
		}
		logger.Get().Error("logout failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "logged out"})
}

package public

import (
	"errors"

	"github.com/farmstock-next/internal/cache"
	"github.com/farmstock-next/internal/http/handlers/shared"
	"github.com/farmstock-next/internal/http/response"
	"github.com/farmstock-next/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 注册场务账号
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	user, err := h.AuthService.Register(service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "注册失败")
		return
	}
	response.Success(c, user)
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 用户登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	ctx := c.Request.Context()
	blocked, err := cache.IsLoginBlocked(ctx, req.Username)
	if err != nil {
		shared.RequestLog(c).Warnw("login_block_check_failed", "error", err)
	}
	if blocked {
		respondError(c, response.CodeTooManyRequests, "登录失败次数过多，请稍后再试", nil)
		return
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if rlErr := cache.RegisterLoginFailure(ctx, req.Username, h.Config.Security.LoginRateLimit); rlErr != nil {
				shared.RequestLog(c).Warnw("login_failure_register_failed", "error", rlErr)
			}
		}
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "登录失败")
		return
	}

	if err := cache.ClearLoginFailures(ctx, req.Username); err != nil {
		shared.RequestLog(c).Warnw("login_failure_clear_failed", "error", err)
	}

	response.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"user":       user,
	})
}

// Profile 当前登录用户信息
func (h *Handler) Profile(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	user, err := h.UserService.GetByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, response.CodeNotFound, "用户不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "获取用户信息失败", err)
		return
	}
	response.Success(c, user)
}

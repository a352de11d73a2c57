package admin

import (
	"github.com/farmstock-next/internal/http/handlers/shared"
	"github.com/farmstock-next/internal/http/response"
	"github.com/farmstock-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListUsers 分页查询用户
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	users, total, err := h.UserService.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
		Role:     c.Query("role"),
		Status:   c.Query("status"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "查询用户失败", err)
		return
	}
	response.SuccessWithPage(c, users, shared.BuildPagination(page, pageSize, total))
}

// SetUserRoleRequest 调整角色请求
type SetUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SetUserRole 调整用户角色
func (h *Handler) SetUserRole(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req SetUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	user, err := h.UserService.SetRole(id, req.Role)
	if err != nil {
		respondWithMappedError(c, err, adminBatchErrorRules, response.CodeInternal, "调整角色失败")
		return
	}
	response.Success(c, user)
}

// SetUserStatusRequest 调整状态请求
type SetUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetUserStatus 启用/禁用用户
func (h *Handler) SetUserStatus(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	user, err := h.UserService.SetStatus(id, req.Status)
	if err != nil {
		respondWithMappedError(c, err, adminBatchErrorRules, response.CodeInternal, "调整状态失败")
		return
	}
	response.Success(c, user)
}

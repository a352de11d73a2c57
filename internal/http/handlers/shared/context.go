package shared

import (
	"strconv"

	"github.com/farmstock-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CurrentUserID 从上下文读取当前登录用户ID
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		RespondError(c, response.CodeUnauthorized, "未登录", nil)
		return 0, false
	}
	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			RespondError(c, response.CodeUnauthorized, "登录状态无效", nil)
			return 0, false
		}
		return uint(v), true
	default:
		RespondError(c, response.CodeInternal, "登录状态无效", nil)
		return 0, false
	}
}

// CurrentUserRole 从上下文读取当前登录用户角色
func CurrentUserRole(c *gin.Context) string {
	if value, exists := c.Get("user_role"); exists {
		if role, ok := value.(string); ok {
			return role
		}
	}
	return ""
}

// ParseUintParam 解析路径参数为 uint
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		RespondError(c, response.CodeBadRequest, "参数无效", nil)
		return 0, false
	}
	return uint(id), true
}

package public

import (
	"github.com/farmstock-next/internal/http/handlers/shared"
	"github.com/farmstock-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 场务侧接口处理器入口
// 说明：staff 与 admin 都通过这里录入生产数据。
type Handler struct {
	*provider.Container
}

// New 创建场务处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, msg string, err error) {
	shared.RespondError(c, code, msg, err)
}

package admin

import (
	"errors"

	"github.com/farmstock-next/internal/http/handlers/shared"
	"github.com/farmstock-next/internal/http/response"
	"github.com/farmstock-next/internal/provider"
	"github.com/farmstock-next/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler 管理侧接口处理器入口
// 审批、移入商店、定价与基础数据管理只在这里暴露。
type Handler struct {
	*provider.Container
}

// New 创建管理处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, msg string, err error) {
	shared.RespondError(c, code, msg, err)
}

// mappedHandlerError 业务错误到响应的映射
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var adminBatchErrorRules = []mappedHandlerError{
	{target: service.ErrBatchNotFound, code: response.CodeNotFound, msg: "批次不存在"},
	{target: service.ErrBatchAlreadyMoved, code: response.CodeBadRequest, msg: "批次已移入商店"},
	{target: service.ErrMortalityNotFound, code: response.CodeNotFound, msg: "死亡记录不存在"},
	{target: service.ErrShopItemNotFound, code: response.CodeNotFound, msg: "商店条目不存在"},
	{target: service.ErrPriceInvalid, code: response.CodeBadRequest, msg: "售价无效"},
	{target: service.ErrPriceBelowCost, code: response.CodeBadRequest, msg: "售价必须高于冻结单位成本"},
	{target: service.ErrAnimalTypeNotFound, code: response.CodeNotFound, msg: "动物种类不存在"},
	{target: service.ErrAnimalTypeCodeTaken, code: response.CodeBadRequest, msg: "种类编码已存在"},
	{target: service.ErrAnimalTypeInUse, code: response.CodeBadRequest, msg: "种类已被批次引用，无法删除"},
	{target: service.ErrAnimalTypeInvalid, code: response.CodeBadRequest, msg: "种类编码或名称无效"},
	{target: service.ErrUserNotFound, code: response.CodeNotFound, msg: "用户不存在"},
	{target: service.ErrInvalidRole, code: response.CodeBadRequest, msg: "角色无效"},
	{target: service.ErrInvalidStatus, code: response.CodeBadRequest, msg: "状态无效"},
}

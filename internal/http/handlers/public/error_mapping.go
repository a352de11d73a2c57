package public

import (
	"errors"

	"github.com/farmstock-next/internal/http/response"
	"github.com/farmstock-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
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

var batchWriteErrorRules = []mappedHandlerError{
	{target: service.ErrAnimalTypeNotFound, code: response.CodeNotFound, msg: "动物种类不存在"},
	{target: service.ErrBatchNotFound, code: response.CodeNotFound, msg: "批次不存在"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, msg: "数量必须为正且不超过初始数量"},
	{target: service.ErrInvalidArrival, code: response.CodeBadRequest, msg: "到场日期无效"},
	{target: service.ErrSerialNumberTaken, code: response.CodeBadRequest, msg: "批次编号已存在"},
	{target: service.ErrInvalidAmount, code: response.CodeBadRequest, msg: "金额不能为负数"},
	{target: service.ErrInvalidBags, code: response.CodeBadRequest, msg: "饲料袋数必须为正"},
	{target: service.ErrInvalidDeathCount, code: response.CodeBadRequest, msg: "死亡数量必须为正"},
	{target: service.ErrMortalityNotFound, code: response.CodeNotFound, msg: "死亡记录不存在"},
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, msg: "用户名或密码错误"},
	{target: service.ErrUserDisabled, code: response.CodeForbidden, msg: "账号已被禁用"},
	{target: service.ErrUsernameTaken, code: response.CodeBadRequest, msg: "用户名已被占用"},
	{target: service.ErrEmailTaken, code: response.CodeBadRequest, msg: "邮箱已被占用"},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, msg: "邮箱格式无效"},
	{target: service.ErrWeakPassword, code: response.CodeBadRequest, msg: "密码强度不足"},
}

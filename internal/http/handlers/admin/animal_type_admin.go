package admin

import (
	"github.com/farmstock-next/internal/http/handlers/shared"
	"github.com/farmstock-next/internal/http/response"
	"github.com/farmstock-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AnimalTypeRequest 动物种类创建/更新请求
type AnimalTypeRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// CreateAnimalType 创建动物种类
func (h *Handler) CreateAnimalType(c *gin.Context) {
	var req AnimalTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	animalType, err := h.AnimalTypeService.Create(service.AnimalTypeInput{
		Code: req.Code,
		Name: req.Name,
	})
	if err != nil {
		respondWithMappedError(c, err, adminBatchErrorRules, response.CodeInternal, "创建动物种类失败")
		return
	}
	response.Success(c, animalType)
}

// UpdateAnimalType 更新动物种类
func (h *Handler) UpdateAnimalType(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req AnimalTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	animalType, err := h.AnimalTypeService.Update(id, service.AnimalTypeInput{
		Code: req.Code,
		Name: req.Name,
	})
	if err != nil {
		respondWithMappedError(c, err, adminBatchErrorRules, response.CodeInternal, "更新动物种类失败")
		return
	}
	response.Success(c, animalType)
}

// DeleteAnimalType 删除动物种类（被批次引用时拒绝）
func (h *Handler) DeleteAnimalType(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.AnimalTypeService.Delete(id); err != nil {
		respondWithMappedError(c, err, adminBatchErrorRules, response.CodeInternal, "删除动物种类失败")
		return
	}
	response.SuccessWithMsg(c, "已删除", nil)
}

package public

import (
	"strconv"

	"github.com/farmstock-next/internal/http/handlers/shared"
	"github.com/farmstock-next/internal/http/response"
	"github.com/farmstock-next/internal/repository"
	"github.com/farmstock-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateMortalityRequest 死亡上报请求
type CreateMortalityRequest struct {
	Count  int    `json:"count" binding:"required"`
	Reason string `json:"reason"`
}

// CreateMortality 上报批次死亡（待审批）
func (h *Handler) CreateMortality(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req CreateMortalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	record, err := h.MortalityService.Create(id, service.CreateMortalityInput{
		Count:  req.Count,
		Reason: req.Reason,
	})
	if err != nil {
		respondWithMappedError(c, err, batchWriteErrorRules, response.CodeInternal, "上报死亡失败")
		return
	}
	response.Success(c, record)
}

// ListBatchMortalities 分页查询批次死亡记录
func (h *Handler) ListBatchMortalities(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := shared.QueryPagination(c)
	records, total, err := h.MortalityService.List(repository.MortalityListFilter{
		Page:     page,
		PageSize: pageSize,
		BatchID:  id,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "查询死亡记录失败", err)
		return
	}
	response.SuccessWithPage(c, records, shared.BuildPagination(page, pageSize, total))
}

// ListMortalities 分页查询死亡记录（可按审批状态过滤）
func (h *Handler) ListMortalities(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	filter := repository.MortalityListFilter{
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("batch_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.BatchID = uint(id)
		}
	}
	if raw := c.Query("approved"); raw != "" {
		if approved, err := strconv.ParseBool(raw); err == nil {
			filter.Approved = &approved
		}
	}

	records, total, err := h.MortalityService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "查询死亡记录失败", err)
		return
	}
	response.SuccessWithPage(c, records, shared.BuildPagination(page, pageSize, total))
}

// GetMortality 死亡记录详情
func (h *Handler) GetMortality(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	record, err := h.MortalityService.GetByID(id)
	if err != nil {
		respondWithMappedError(c, err, batchWriteErrorRules, response.CodeInternal, "查询死亡记录失败")
		return
	}
	response.Success(c, record)
}

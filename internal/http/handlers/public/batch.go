package public

import (
	"strconv"
	"time"

	"github.com/farmstock-next/internal/http/handlers/shared"
	"github.com/farmstock-next/internal/http/response"
	"github.com/farmstock-next/internal/models"
	"github.com/farmstock-next/internal/repository"
	"github.com/farmstock-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const arrivalDateLayout = "2006-01-02"

// CreateBatchRequest 创建批次请求
type CreateBatchRequest struct {
	AnimalTypeID    uint   `json:"animal_type_id" binding:"required"`
	ArrivalDate     string `json:"arrival_date" binding:"required"`
	SerialNumber    string `json:"serial_number"`
	InitialQuantity int    `json:"initial_quantity" binding:"required"`
	CurrentQuantity *int   `json:"current_quantity"`
}

// BatchDetail 批次详情（附实时成本汇总）
type BatchDetail struct {
	*models.Batch
	Totals *service.CostSummary `json:"totals"`
}

// CreateBatch 创建批次
func (h *Handler) CreateBatch(c *gin.Context) {
	var req CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}
	arrival, err := time.Parse(arrivalDateLayout, req.ArrivalDate)
	if err != nil {
		respondError(c, response.CodeBadRequest, "到场日期格式应为 YYYY-MM-DD", nil)
		return
	}

	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}

	batch, err := h.BatchService.Create(service.CreateBatchInput{
		AnimalTypeID:    req.AnimalTypeID,
		ArrivalDate:     arrival,
		SerialNumber:    req.SerialNumber,
		InitialQuantity: req.InitialQuantity,
		CurrentQuantity: req.CurrentQuantity,
		CreatedByID:     &userID,
	})
	if err != nil {
		respondWithMappedError(c, err, batchWriteErrorRules, response.CodeInternal, "创建批次失败")
		return
	}
	response.Success(c, batch)
}

// ListBatches 分页查询批次
func (h *Handler) ListBatches(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	filter := repository.BatchListFilter{
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("animal_type_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.AnimalTypeID = uint(id)
		}
	}
	if raw := c.Query("moved"); raw != "" {
		if moved, err := strconv.ParseBool(raw); err == nil {
			filter.MovedToShop = &moved
		}
	}
	if raw := c.Query("arrival_from"); raw != "" {
		if from, err := time.Parse(arrivalDateLayout, raw); err == nil {
			filter.ArrivalFrom = &from
		}
	}
	if raw := c.Query("arrival_to"); raw != "" {
		if to, err := time.Parse(arrivalDateLayout, raw); err == nil {
			filter.ArrivalTo = &to
		}
	}

	batches, total, err := h.BatchService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "查询批次失败", err)
		return
	}
	response.SuccessWithPage(c, batches, shared.BuildPagination(page, pageSize, total))
}

// GetBatch 批次详情（附实时成本汇总）
func (h *Handler) GetBatch(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	batch, err := h.BatchService.GetByID(id)
	if err != nil {
		respondWithMappedError(c, err, batchWriteErrorRules, response.CodeInternal, "查询批次失败")
		return
	}
	totals, err := h.BatchService.Totals(id)
	if err != nil {
		respondWithMappedError(c, err, batchWriteErrorRules, response.CodeInternal, "计算成本失败")
		return
	}
	response.Success(c, BatchDetail{Batch: batch, Totals: totals})
}

// GetBatchTotals 批次成本汇总
func (h *Handler) GetBatchTotals(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	totals, err := h.BatchService.Totals(id)
	if err != nil {
		respondWithMappedError(c, err, batchWriteErrorRules, response.CodeInternal, "计算成本失败")
		return
	}
	response.Success(c, totals)
}

// AddExpenseRequest 记录支出请求
type AddExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// AddExpense 为批次记录支出
func (h *Handler) AddExpense(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}

	expense, err := h.BatchService.AddExpense(id, service.AddExpenseInput{
		Description:  req.Description,
		Amount:       req.Amount,
		RecordedByID: &userID,
	})
	if err != nil {
		respondWithMappedError(c, err, batchWriteErrorRules, response.CodeInternal, "记录支出失败")
		return
	}
	response.Success(c, expense)
}

// ListExpenses 分页查询批次支出
func (h *Handler) ListExpenses(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := shared.QueryPagination(c)
	expenses, total, err := h.BatchService.ListExpenses(repository.LedgerListFilter{
		Page:     page,
		PageSize: pageSize,
		BatchID:  id,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "查询支出失败", err)
		return
	}
	response.SuccessWithPage(c, expenses, shared.BuildPagination(page, pageSize, total))
}

// AddFeedingRequest 记录饲喂请求
type AddFeedingRequest struct {
	Bags   int             `json:"bags"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Note   string          `json:"note"`
}

// AddFeeding 为批次记录饲喂
func (h *Handler) AddFeeding(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req AddFeedingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}

	record, err := h.BatchService.AddFeeding(id, service.AddFeedingInput{
		Bags:         req.Bags,
		Amount:       req.Amount,
		Note:         req.Note,
		RecordedByID: &userID,
	})
	if err != nil {
		respondWithMappedError(c, err, batchWriteErrorRules, response.CodeInternal, "记录饲喂失败")
		return
	}
	response.Success(c, record)
}

// ListFeeding 分页查询批次饲喂记录
func (h *Handler) ListFeeding(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := shared.QueryPagination(c)
	records, total, err := h.BatchService.ListFeeding(repository.LedgerListFilter{
		Page:     page,
		PageSize: pageSize,
		BatchID:  id,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "查询饲喂记录失败", err)
		return
	}
	response.SuccessWithPage(c, records, shared.BuildPagination(page, pageSize, total))
}

package admin

import (
	"github.com/farmstock-next/internal/http/handlers/shared"
	"github.com/farmstock-next/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MoveBatchToShop 将批次移入商店（冻结成本，单向）
func (h *Handler) MoveBatchToShop(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}

	batch, err := h.BatchService.MoveToShop(id, &userID)
	if err != nil {
		respondWithMappedError(c, err, adminBatchErrorRules, response.CodeInternal, "移入商店失败")
		return
	}
	response.SuccessWithMsg(c, "批次已移入商店", batch)
}

// ApproveMortality 审批死亡记录并扣减批次数量
func (h *Handler) ApproveMortality(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}

	record, err := h.MortalityService.Approve(id, &userID)
	if err != nil {
		respondWithMappedError(c, err, adminBatchErrorRules, response.CodeInternal, "审批失败")
		return
	}
	response.SuccessWithMsg(c, "审批通过", record)
}

// SetShopItemPriceRequest 定价请求
type SetShopItemPriceRequest struct {
	SellingPricePerUnit decimal.Decimal `json:"selling_price_per_unit" binding:"required"`
}

// SetShopItemPrice 设置商店条目单位售价
func (h *Handler) SetShopItemPrice(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req SetShopItemPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	item, err := h.ShopService.SetPrice(id, req.SellingPricePerUnit)
	if err != nil {
		respondWithMappedError(c, err, adminBatchErrorRules, response.CodeInternal, "定价失败")
		return
	}
	response.Success(c, item)
}

package public

import (
	"errors"
	"strconv"

	"github.com/farmstock-next/internal/http/handlers/shared"
	"github.com/farmstock-next/internal/http/response"
	"github.com/farmstock-next/internal/repository"
	"github.com/farmstock-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListShopItems 分页查询商店条目
func (h *Handler) ListShopItems(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	filter := repository.ShopItemListFilter{
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("priced"); raw != "" {
		if priced, err := strconv.ParseBool(raw); err == nil {
			filter.Priced = &priced
		}
	}

	items, total, err := h.ShopService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "查询商店条目失败", err)
		return
	}
	response.SuccessWithPage(c, items, shared.BuildPagination(page, pageSize, total))
}

// GetShopItem 商店条目详情
func (h *Handler) GetShopItem(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	item, err := h.ShopService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrShopItemNotFound) {
			respondError(c, response.CodeNotFound, "商店条目不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "查询商店条目失败", err)
		return
	}
	response.Success(c, item)
}

// ListAnimalTypes 查询全部动物种类
func (h *Handler) ListAnimalTypes(c *gin.Context) {
	animalTypes, err := h.AnimalTypeService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "查询动物种类失败", err)
		return
	}
	response.Success(c, animalTypes)
}

// GetAnimalType 动物种类详情
func (h *Handler) GetAnimalType(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	animalType, err := h.AnimalTypeService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrAnimalTypeNotFound) {
			respondError(c, response.CodeNotFound, "动物种类不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "查询动物种类失败", err)
		return
	}
	response.Success(c, animalType)
}

// ListActivityLogs 分页查询活动日志
func (h *Handler) ListActivityLogs(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	filter := repository.ActivityLogListFilter{
		Page:     page,
		PageSize: pageSize,
		Action:   c.Query("action"),
	}
	if raw := c.Query("batch_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.BatchID = uint(id)
		}
	}

	entries, total, err := h.ActivityLogRepo.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "查询活动日志失败", err)
		return
	}
	response.SuccessWithPage(c, entries, shared.BuildPagination(page, pageSize, total))
}

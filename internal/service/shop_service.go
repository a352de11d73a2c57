package service

import (
	"github.com/farmstock-next/internal/models"
	"github.com/farmstock-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ShopService 商店条目业务服务
type ShopService struct {
	shopItemRepo repository.ShopItemRepository
	batchRepo    repository.BatchRepository
}

// NewShopService 创建商店服务
func NewShopService(shopItemRepo repository.ShopItemRepository, batchRepo repository.BatchRepository) *ShopService {
	return &ShopService{shopItemRepo: shopItemRepo, batchRepo: batchRepo}
}

// GetByID 获取商店条目详情
func (s *ShopService) GetByID(id uint) (*models.ShopItem, error) {
	item, err := s.shopItemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrShopItemNotFound
	}
	return item, nil
}

// List 分页查询商店条目
func (s *ShopService) List(filter repository.ShopItemListFilter) ([]models.ShopItem, int64, error) {
	return s.shopItemRepo.List(filter)
}

// SetPrice 设置单位售价。批次成本已冻结时，
// 售价必须严格高于冻结单位成本，否则拒绝。
func (s *ShopService) SetPrice(shopItemID uint, price decimal.Decimal) (*models.ShopItem, error) {
	if price.IsNegative() {
		return nil, ErrPriceInvalid
	}

	item, err := s.shopItemRepo.GetByID(shopItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrShopItemNotFound
	}

	batch, err := s.batchRepo.GetByID(item.BatchID)
	if err != nil {
		return nil, err
	}
	if batch != nil && batch.LockedUnitCost != nil {
		if price.LessThanOrEqual(*batch.LockedUnitCost) {
			return nil, ErrPriceBelowCost
		}
	}

	selling := models.NewMoneyFromDecimal(price)
	item.SellingPricePerUnit = &selling
	if err := s.shopItemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

package repository

import (
	"errors"

	"github.com/farmstock-next/internal/models"

	"gorm.io/gorm"
)

// ShopItemRepository 商店条目数据访问接口
type ShopItemRepository interface {
	GetByID(id uint) (*models.ShopItem, error)
	GetByBatchID(batchID uint) (*models.ShopItem, error)
	Create(item *models.ShopItem) error
	Update(item *models.ShopItem) error
	List(filter ShopItemListFilter) ([]models.ShopItem, int64, error)
	WithTx(tx *gorm.DB) *GormShopItemRepository
}

// GormShopItemRepository GORM 商店条目仓储实现
type GormShopItemRepository struct {
	db *gorm.DB
}

// NewShopItemRepository 创建商店条目仓储
func NewShopItemRepository(db *gorm.DB) *GormShopItemRepository {
	return &GormShopItemRepository{db: db}
}

// WithTx 绑定事务
func (r *GormShopItemRepository) WithTx(tx *gorm.DB) *GormShopItemRepository {
	if tx == nil {
		return r
	}
	return &GormShopItemRepository{db: tx}
}

// GetByID 按ID获取商店条目（带批次）
func (r *GormShopItemRepository) GetByID(id uint) (*models.ShopItem, error) {
	if id == 0 {
		return nil, nil
	}
	var item models.ShopItem
	if err := r.db.Preload("Batch").Preload("Batch.AnimalType").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByBatchID 按批次ID获取商店条目
func (r *GormShopItemRepository) GetByBatchID(batchID uint) (*models.ShopItem, error) {
	if batchID == 0 {
		return nil, nil
	}
	var item models.ShopItem
	if err := r.db.Where("batch_id = ?", batchID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create 创建商店条目
func (r *GormShopItemRepository) Create(item *models.ShopItem) error {
	return r.db.Create(item).Error
}

// Update 更新商店条目
func (r *GormShopItemRepository) Update(item *models.ShopItem) error {
	return r.db.Save(item).Error
}

// List 分页查询商店条目
func (r *GormShopItemRepository) List(filter ShopItemListFilter) ([]models.ShopItem, int64, error) {
	query := r.db.Model(&models.ShopItem{})
	if filter.Priced != nil {
		if *filter.Priced {
			query = query.Where("selling_price_per_unit IS NOT NULL")
		} else {
			query = query.Where("selling_price_per_unit IS NULL")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var items []models.ShopItem
	if err := query.Preload("Batch").Preload("Batch.AnimalType").Order("id desc").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

package repository

import (
	"github.com/farmstock-next/internal/models"

	"gorm.io/gorm"
)

// FeedingRepository 饲喂台账数据访问接口
type FeedingRepository interface {
	Create(record *models.FeedingRecord) error
	List(filter LedgerListFilter) ([]models.FeedingRecord, int64, error)
	WithTx(tx *gorm.DB) *GormFeedingRepository
}

// GormFeedingRepository GORM 饲喂仓储实现
type GormFeedingRepository struct {
	db *gorm.DB
}

// NewFeedingRepository 创建饲喂仓储
func NewFeedingRepository(db *gorm.DB) *GormFeedingRepository {
	return &GormFeedingRepository{db: db}
}

// WithTx 绑定事务
func (r *GormFeedingRepository) WithTx(tx *gorm.DB) *GormFeedingRepository {
	if tx == nil {
		return r
	}
	return &GormFeedingRepository{db: tx}
}

// Create 创建饲喂记录
func (r *GormFeedingRepository) Create(record *models.FeedingRecord) error {
	return r.db.Create(record).Error
}

// List 分页查询饲喂记录
func (r *GormFeedingRepository) List(filter LedgerListFilter) ([]models.FeedingRecord, int64, error) {
	query := r.db.Model(&models.FeedingRecord{})
	if filter.BatchID != 0 {
		query = query.Where("batch_id = ?", filter.BatchID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var records []models.FeedingRecord
	if err := query.Order("id desc").Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

package repository

import (
	"github.com/farmstock-next/internal/models"

	"gorm.io/gorm"
)

// ActivityLogRepository 活动日志数据访问接口
type ActivityLogRepository interface {
	Create(entry *models.ActivityLog) error
	List(filter ActivityLogListFilter) ([]models.ActivityLog, int64, error)
	WithTx(tx *gorm.DB) *GormActivityLogRepository
}

// GormActivityLogRepository GORM 活动日志仓储实现
type GormActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository 创建活动日志仓储
func NewActivityLogRepository(db *gorm.DB) *GormActivityLogRepository {
	return &GormActivityLogRepository{db: db}
}

// WithTx 绑定事务
func (r *GormActivityLogRepository) WithTx(tx *gorm.DB) *GormActivityLogRepository {
	if tx == nil {
		return r
	}
	return &GormActivityLogRepository{db: tx}
}

// Create 写入活动日志
func (r *GormActivityLogRepository) Create(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

// List 分页查询活动日志
func (r *GormActivityLogRepository) List(filter ActivityLogListFilter) ([]models.ActivityLog, int64, error) {
	query := r.db.Model(&models.ActivityLog{})
	if filter.BatchID > 0 {
		query = query.Where("batch_id = ?", filter.BatchID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var entries []models.ActivityLog
	if err := query.Order("id desc").Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

package repository

import (
	"errors"

	"github.com/farmstock-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MortalityRepository 死亡记录数据访问接口
type MortalityRepository interface {
	GetByID(id uint) (*models.MortalityRecord, error)
	GetByIDForUpdate(id uint) (*models.MortalityRecord, error)
	Create(record *models.MortalityRecord) error
	Update(record *models.MortalityRecord) error
	List(filter MortalityListFilter) ([]models.MortalityRecord, int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormMortalityRepository
}

// GormMortalityRepository GORM 死亡记录仓储实现
type GormMortalityRepository struct {
	db *gorm.DB
}

// NewMortalityRepository 创建死亡记录仓储
func NewMortalityRepository(db *gorm.DB) *GormMortalityRepository {
	return &GormMortalityRepository{db: db}
}

// WithTx 绑定事务
func (r *GormMortalityRepository) WithTx(tx *gorm.DB) *GormMortalityRepository {
	if tx == nil {
		return r
	}
	return &GormMortalityRepository{db: tx}
}

// Transaction 在事务中执行
func (r *GormMortalityRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// GetByID 按ID获取死亡记录
func (r *GormMortalityRepository) GetByID(id uint) (*models.MortalityRecord, error) {
	if id == 0 {
		return nil, nil
	}
	var record models.MortalityRecord
	if err := r.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// GetByIDForUpdate 按ID加锁获取死亡记录
func (r *GormMortalityRepository) GetByIDForUpdate(id uint) (*models.MortalityRecord, error) {
	if id == 0 {
		return nil, nil
	}
	var record models.MortalityRecord
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Create 创建死亡记录
func (r *GormMortalityRepository) Create(record *models.MortalityRecord) error {
	return r.db.Create(record).Error
}

// Update 更新死亡记录
func (r *GormMortalityRepository) Update(record *models.MortalityRecord) error {
	return r.db.Save(record).Error
}

// List 分页查询死亡记录
func (r *GormMortalityRepository) List(filter MortalityListFilter) ([]models.MortalityRecord, int64, error) {
	query := r.db.Model(&models.MortalityRecord{})
	if filter.BatchID != 0 {
		query = query.Where("batch_id = ?", filter.BatchID)
	}
	if filter.Approved != nil {
		query = query.Where("approved = ?", *filter.Approved)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var records []models.MortalityRecord
	if err := query.Order("id desc").Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

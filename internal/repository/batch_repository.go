package repository

import (
	"errors"
	"strings"

	"github.com/farmstock-next/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BatchRepository 批次数据访问接口
type BatchRepository interface {
	GetByID(id uint) (*models.Batch, error)
	GetByIDForUpdate(id uint) (*models.Batch, error)
	GetBySerialNumber(serial string) (*models.Batch, error)
	Create(batch *models.Batch) error
	Update(batch *models.Batch) error
	List(filter BatchListFilter) ([]models.Batch, int64, error)
	SumExpenses(batchID uint) (decimal.Decimal, error)
	SumFeeding(batchID uint) (decimal.Decimal, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormBatchRepository
}

// GormBatchRepository GORM 批次仓储实现
type GormBatchRepository struct {
	db *gorm.DB
}

// NewBatchRepository 创建批次仓储
func NewBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// WithTx 绑定事务
func (r *GormBatchRepository) WithTx(tx *gorm.DB) *GormBatchRepository {
	if tx == nil {
		return r
	}
	return &GormBatchRepository{db: tx}
}

// Transaction 在事务中执行
func (r *GormBatchRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// GetByID 按ID获取批次（带动物种类）
func (r *GormBatchRepository) GetByID(id uint) (*models.Batch, error) {
	if id == 0 {
		return nil, nil
	}
	var batch models.Batch
	if err := r.db.Preload("AnimalType").First(&batch, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}

// GetByIDForUpdate 按ID加锁获取批次
func (r *GormBatchRepository) GetByIDForUpdate(id uint) (*models.Batch, error) {
	if id == 0 {
		return nil, nil
	}
	var batch models.Batch
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&batch, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}

// GetBySerialNumber 按批次编号获取批次
func (r *GormBatchRepository) GetBySerialNumber(serial string) (*models.Batch, error) {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return nil, nil
	}
	var batch models.Batch
	if err := r.db.Where("serial_number = ?", serial).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}

// Create 创建批次
func (r *GormBatchRepository) Create(batch *models.Batch) error {
	return r.db.Create(batch).Error
}

// Update 更新批次
func (r *GormBatchRepository) Update(batch *models.Batch) error {
	return r.db.Save(batch).Error
}

// List 分页查询批次
func (r *GormBatchRepository) List(filter BatchListFilter) ([]models.Batch, int64, error) {
	query := r.db.Model(&models.Batch{})
	if filter.AnimalTypeID != 0 {
		query = query.Where("animal_type_id = ?", filter.AnimalTypeID)
	}
	if filter.MovedToShop != nil {
		query = query.Where("is_moved_to_shop = ?", *filter.MovedToShop)
	}
	if filter.ArrivalFrom != nil {
		query = query.Where("arrival_date >= ?", *filter.ArrivalFrom)
	}
	if filter.ArrivalTo != nil {
		query = query.Where("arrival_date <= ?", *filter.ArrivalTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var batches []models.Batch
	if err := query.Preload("AnimalType").Order("arrival_date desc, id desc").Find(&batches).Error; err != nil {
		return nil, 0, err
	}
	return batches, total, nil
}

// SumExpenses 汇总批次支出金额
func (r *GormBatchRepository) SumExpenses(batchID uint) (decimal.Decimal, error) {
	return r.sumAmount(&models.Expense{}, batchID)
}

// SumFeeding 汇总批次饲喂金额
func (r *GormBatchRepository) SumFeeding(batchID uint) (decimal.Decimal, error) {
	return r.sumAmount(&models.FeedingRecord{}, batchID)
}

func (r *GormBatchRepository) sumAmount(model interface{}, batchID uint) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.Model(model).
		Where("batch_id = ?", batchID).
		Select("SUM(amount)").
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

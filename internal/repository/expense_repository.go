package repository

import (
	"github.com/farmstock-next/internal/models"

	"gorm.io/gorm"
)

// ExpenseRepository 支出台账数据访问接口
type ExpenseRepository interface {
	Create(expense *models.Expense) error
	List(filter LedgerListFilter) ([]models.Expense, int64, error)
	WithTx(tx *gorm.DB) *GormExpenseRepository
}

// GormExpenseRepository GORM 支出仓储实现
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository 创建支出仓储
func NewExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// WithTx 绑定事务
func (r *GormExpenseRepository) WithTx(tx *gorm.DB) *GormExpenseRepository {
	if tx == nil {
		return r
	}
	return &GormExpenseRepository{db: tx}
}

// Create 创建支出记录
func (r *GormExpenseRepository) Create(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

// List 分页查询支出记录
func (r *GormExpenseRepository) List(filter LedgerListFilter) ([]models.Expense, int64, error) {
	query := r.db.Model(&models.Expense{})
	if filter.BatchID != 0 {
		query = query.Where("batch_id = ?", filter.BatchID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var expenses []models.Expense
	if err := query.Order("id desc").Find(&expenses).Error; err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

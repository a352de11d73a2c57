package models

import (
	"time"
)

// Expense 批次支出明细（只追加的成本台账）
type Expense struct {
	ID          uint      `gorm:"primarykey" json:"id"`            // 主键
	BatchID     uint      `gorm:"index;not null" json:"batch_id"`  // 批次ID
	Description string    `gorm:"not null" json:"description"`     // 支出说明
	Amount      Money     `gorm:"type:decimal(12,2);not null" json:"amount"` // 支出金额
	RecordedByID *uint    `gorm:"index" json:"recorded_by_id,omitempty"`     // 记录人ID
	CreatedAt   time.Time `gorm:"index" json:"created_at"`         // 创建时间
}

// TableName 指定表名
func (Expense) TableName() string {
	return "expenses"
}

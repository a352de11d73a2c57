package models

import (
	"time"
)

// MortalityRecord 死亡记录。创建时未审批，
// 审批通过的瞬间才从批次数量中扣减，且只扣减一次。
type MortalityRecord struct {
	ID           uint      `gorm:"primarykey" json:"id"`                        // 主键
	BatchID      uint      `gorm:"index;not null" json:"batch_id"`              // 批次ID
	Count        int       `gorm:"not null" json:"count"`                       // 死亡数量
	Reason       string    `json:"reason"`                                      // 死亡原因
	Approved     bool      `gorm:"index;not null;default:false" json:"approved"` // 是否已审批（单向）
	ApprovedByID *uint     `gorm:"index" json:"approved_by_id,omitempty"`       // 审批人ID
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                     // 创建时间
}

// TableName 指定表名
func (MortalityRecord) TableName() string {
	return "mortality_records"
}

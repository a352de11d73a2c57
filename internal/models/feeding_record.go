package models

import (
	"time"
)

// FeedingRecord 批次饲喂记录（只追加的成本台账）
type FeedingRecord struct {
	ID           uint      `gorm:"primarykey" json:"id"`                      // 主键
	BatchID      uint      `gorm:"index;not null" json:"batch_id"`            // 批次ID
	Bags         int       `gorm:"not null;default:1" json:"bags"`            // 饲料袋数
	Amount       Money     `gorm:"type:decimal(12,2);not null" json:"amount"` // 饲喂花费
	Note         string    `json:"note"`                                      // 备注
	RecordedByID *uint     `gorm:"index" json:"recorded_by_id,omitempty"`     // 记录人ID
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                   // 创建时间
}

// TableName 指定表名
func (FeedingRecord) TableName() string {
	return "feeding_records"
}

package models

import (
	"time"
)

// ActivityLog 批次关键操作的审计记录（由异步 worker 写入）
type ActivityLog struct {
	ID                uint      `gorm:"primarykey" json:"id"`                       // 主键
	Action            string    `gorm:"index;not null" json:"action"`               // 动作类型
	BatchID           uint      `gorm:"index;not null" json:"batch_id"`             // 批次ID
	MortalityRecordID *uint     `gorm:"index" json:"mortality_record_id,omitempty"` // 死亡记录ID（审批动作）
	ActorID           *uint     `gorm:"index" json:"actor_id,omitempty"`            // 操作人ID
	Detail            string    `json:"detail"`                                     // 详情描述
	CreatedAt         time.Time `gorm:"index" json:"created_at"`                    // 创建时间
}

// TableName 指定表名
func (ActivityLog) TableName() string {
	return "activity_logs"
}

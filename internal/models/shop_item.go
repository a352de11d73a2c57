package models

import (
	"time"
)

// ShopItem 商店条目（与批次一对一）。
// 售价一旦设置必须严格高于批次冻结单位成本。
type ShopItem struct {
	ID                  uint      `gorm:"primarykey" json:"id"`                             // 主键
	BatchID             uint      `gorm:"uniqueIndex;not null" json:"batch_id"`             // 批次ID
	SellingPricePerUnit *Money    `gorm:"type:decimal(12,2)" json:"selling_price_per_unit"` // 单位售价（未定价为空）
	CreatedAt           time.Time `gorm:"index" json:"created_at"`                          // 创建时间
	UpdatedAt           time.Time `json:"updated_at"`                                       // 更新时间

	Batch Batch `gorm:"foreignKey:BatchID" json:"batch,omitempty"` // 关联批次
}

// TableName 指定表名
func (ShopItem) TableName() string {
	return "shop_items"
}

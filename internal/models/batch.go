package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch 生产批次表。批次一旦移入商店，
// locked_total_cost/locked_unit_cost 即被永久冻结。
type Batch struct {
	ID              uint             `gorm:"primarykey" json:"id"`                          // 主键
	AnimalTypeID    uint             `gorm:"index;not null" json:"animal_type_id"`          // 动物种类ID
	ArrivalDate     time.Time        `gorm:"type:date;not null" json:"arrival_date"`        // 到场日期
	SerialNumber    string           `gorm:"uniqueIndex;not null" json:"serial_number"`     // 批次编号
	InitialQuantity int              `gorm:"not null" json:"initial_quantity"`              // 初始数量（创建后不可变）
	CurrentQuantity int              `gorm:"not null" json:"current_quantity"`              // 当前数量（0 ~ 初始数量）
	IsMovedToShop   bool             `gorm:"index;not null;default:false" json:"is_moved_to_shop"` // 是否已移入商店（单向）
	LockedTotalCost *Money           `gorm:"type:decimal(12,2)" json:"locked_total_cost"`   // 冻结总成本（移入商店前为空）
	LockedUnitCost  *decimal.Decimal `gorm:"type:decimal(12,4)" json:"locked_unit_cost"`    // 冻结单位成本（4 位小数）
	CreatedByID     *uint            `gorm:"index" json:"created_by_id,omitempty"`          // 创建人ID
	CreatedAt       time.Time        `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt       time.Time        `json:"updated_at"`                                    // 更新时间

	AnimalType       AnimalType        `gorm:"foreignKey:AnimalTypeID;constraint:OnDelete:RESTRICT" json:"animal_type,omitempty"`  // 动物种类
	Expenses         []Expense         `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE" json:"expenses,omitempty"`           // 支出明细
	FeedingRecords   []FeedingRecord   `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE" json:"feeding_records,omitempty"`    // 饲喂记录
	MortalityRecords []MortalityRecord `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE" json:"mortality_records,omitempty"`  // 死亡记录
	ShopItem         *ShopItem         `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE" json:"shop_item,omitempty"`          // 商店条目
}

// TableName 指定表名
func (Batch) TableName() string {
	return "batches"
}

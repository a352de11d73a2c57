package models

// AnimalType 动物种类表（静态参考数据，被批次引用时禁止删除）
type AnimalType struct {
	ID   uint   `gorm:"primarykey" json:"id"`             // 主键
	Code string `gorm:"uniqueIndex;not null" json:"code"` // 种类编码
	Name string `gorm:"not null" json:"name"`             // 种类名称

	Batches []Batch `gorm:"foreignKey:AnimalTypeID" json:"batches,omitempty"` // 关联批次
}

// TableName 指定表名
func (AnimalType) TableName() string {
	return "animal_types"
}

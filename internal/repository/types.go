package repository

import "time"

// UserListFilter 用户列表过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Role     string
	Status   string
}

// BatchListFilter 批次列表过滤条件
type BatchListFilter struct {
	Page         int
	PageSize     int
	AnimalTypeID uint
	MovedToShop  *bool
	ArrivalFrom  *time.Time
	ArrivalTo    *time.Time
}

// LedgerListFilter 成本台账列表过滤条件（支出/饲喂共用）
type LedgerListFilter struct {
	Page     int
	PageSize int
	BatchID  uint
}

// MortalityListFilter 死亡记录列表过滤条件
type MortalityListFilter struct {
	Page     int
	PageSize int
	BatchID  uint
	Approved *bool
}

// ShopItemListFilter 商店条目列表过滤条件
type ShopItemListFilter struct {
	Page     int
	PageSize int
	Priced   *bool
}

// ActivityLogListFilter 活动日志列表过滤条件
type ActivityLogListFilter struct {
	Page     int
	PageSize int
	BatchID  uint
	Action   string
}

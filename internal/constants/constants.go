package constants

// 用户角色常量
const (
	UserRoleAdmin = "admin"
	UserRoleStaff = "staff"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 批次状态常量
const (
	BatchStateActive = "active"
	BatchStateShop   = "shop"
)

// 活动日志动作常量
const (
	ActivityMortalityApproved = "mortality_approved"
	ActivityBatchMovedToShop  = "batch_moved_to_shop"
)

// 异步任务类型常量
const (
	TaskMortalityApprovedLog = "activity:mortality_approved"
	TaskBatchMovedLog        = "activity:batch_moved_to_shop"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 批次编号前缀
const (
	BatchSerialPrefix = "BATCH"
)

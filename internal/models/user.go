package models

import (
	"time"
)

// User 系统用户表（场务人员与管理员）
type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`                    // 主键
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`    // 用户名
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`       // 邮箱
	PasswordHash string     `gorm:"type:varchar(200);not null" json:"-"`     // 密码哈希
	Role         string     `gorm:"index;not null;default:staff" json:"role"` // 角色（admin/staff）
	Status       string     `gorm:"index;not null;default:active" json:"status"` // 状态
	LastLoginAt  *time.Time `json:"last_login_at"`                           // 最后登录时间
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`                 // 创建时间
	UpdatedAt    time.Time  `json:"updated_at"`                              // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

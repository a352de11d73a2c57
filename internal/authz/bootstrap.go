package authz

import (
	"fmt"

	"github.com/farmstock-next/internal/constants"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds 系统预置角色矩阵。
// staff 只能建批次、记台账、报死亡；审批、移入商店、
// 定价和基础数据/用户管理仅对 admin 开放。
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.UserRoleStaff,
			Policies: []Policy{
				{Object: "/api/v1/batches", Action: "*"},
				{Object: "/api/v1/batches/:id", Action: "GET"},
				{Object: "/api/v1/batches/:id/totals", Action: "GET"},
				{Object: "/api/v1/batches/:id/expenses", Action: "*"},
				{Object: "/api/v1/batches/:id/feedings", Action: "*"},
				{Object: "/api/v1/batches/:id/mortalities", Action: "*"},
				{Object: "/api/v1/mortalities", Action: "GET"},
				{Object: "/api/v1/mortalities/:id", Action: "GET"},
				{Object: "/api/v1/animal-types", Action: "GET"},
				{Object: "/api/v1/animal-types/:id", Action: "GET"},
				{Object: "/api/v1/shop-items", Action: "GET"},
				{Object: "/api/v1/shop-items/:id", Action: "GET"},
				{Object: "/api/v1/activity-logs", Action: "GET"},
				{Object: "/api/v1/profile", Action: "GET"},
			},
		},
		{
			Role:     constants.UserRoleAdmin,
			Inherits: []string{constants.UserRoleStaff},
			Policies: []Policy{
				{Object: "/api/v1/*", Action: "*"},
			},
		},
	}
}

// BootstrapBuiltinRoles 初始化预置角色与默认策略
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	changed := false
	for _, seed := range BuiltinRoleSeeds() {
		role := SubjectForRole(seed.Role)

		for _, parent := range seed.Inherits {
			added, err := s.enforcer.AddNamedGroupingPolicy("g", role, SubjectForRole(parent))
			if err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
			if added {
				changed = true
			}
		}

		for _, policy := range seed.Policies {
			action := normalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			added, err := s.enforcer.AddPolicy(role, normalizeObject(policy.Object), action)
			if err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
			if added {
				changed = true
			}
		}
	}

	if changed {
		return s.saveAndReload()
	}
	return nil
}

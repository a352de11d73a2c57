package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/farmstock-next/internal/constants"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	return svc
}

func TestStaffCanRecordButNotApprove(t *testing.T) {
	svc := setupAuthzServiceTest(t)

	allow, err := svc.EnforceRole(constants.UserRoleStaff, "/api/v1/batches/12/expenses", "POST")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if !allow {
		t.Fatal("staff must be allowed to record expenses")
	}

	allow, err = svc.EnforceRole(constants.UserRoleStaff, "/api/v1/mortalities/3/approve", "POST")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if allow {
		t.Fatal("staff must not approve mortality records")
	}

	allow, err = svc.EnforceRole(constants.UserRoleStaff, "/api/v1/batches/12/move-to-shop", "POST")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if allow {
		t.Fatal("staff must not move batches to shop")
	}
}

func TestAdminInheritsStaffAndHasFullAccess(t *testing.T) {
	svc := setupAuthzServiceTest(t)

	cases := []struct {
		obj string
		act string
	}{
		{"/api/v1/batches/12/expenses", "POST"},
		{"/api/v1/mortalities/3/approve", "POST"},
		{"/api/v1/batches/12/move-to-shop", "POST"},
		{"/api/v1/shop-items/5/price", "PUT"},
		{"/api/v1/animal-types/2", "DELETE"},
		{"/api/v1/users/9/role", "PUT"},
	}
	for _, tc := range cases {
		allow, err := svc.EnforceRole(constants.UserRoleAdmin, tc.obj, tc.act)
		if err != nil {
			t.Fatalf("enforce %s %s failed: %v", tc.act, tc.obj, err)
		}
		if !allow {
			t.Fatalf("admin must be allowed: %s %s", tc.act, tc.obj)
		}
	}
}

func TestUnknownRoleDenied(t *testing.T) {
	svc := setupAuthzServiceTest(t)

	allow, err := svc.EnforceRole("intern", "/api/v1/batches", "GET")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if allow {
		t.Fatal("unknown role must be denied")
	}
}

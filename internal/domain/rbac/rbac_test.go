package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
)

func TestPermissions_MatrixExhaustive(t *testing.T) {
	for _, role := range domain.AllRoles {
		_, ok := rolePermissions[role]
		assert.True(t, ok, "role %s missing from the permission matrix", role)
	}
	assert.Len(t, rolePermissions, len(domain.AllRoles))
}

func TestHasPermission_SuperAdminBypass(t *testing.T) {
	actor := Actor{Role: domain.RoleSuperAdmin, Permissions: nil}
	assert.True(t, actor.HasPermission(PlatformFeeManage))
	assert.True(t, actor.HasPermission("made.up.permission"))
}

func TestHasPermission_ExplicitSet(t *testing.T) {
	actor := Actor{Role: domain.RoleViewer, Permissions: []string{SpecialistReadAny}}
	assert.True(t, actor.HasPermission(SpecialistReadAny))
	assert.False(t, actor.HasPermission(SpecialistCreate))
}

func TestEffectivePermissions_OverridePrecedence(t *testing.T) {
	u := &domain.User{Role: domain.RoleViewer}
	assert.Equal(t, Permissions(domain.RoleViewer), EffectivePermissions(u))

	u.Permissions = []string{CompanyCreate}
	assert.Equal(t, []string{CompanyCreate}, EffectivePermissions(u),
		"explicit override replaces role defaults entirely")
}

func TestCanAccessOwned(t *testing.T) {
	owner := Actor{ID: "u1", Role: domain.RoleSpecialist}
	assert.True(t, owner.CanAccessOwned("u1"))
	assert.False(t, owner.CanAccessOwned("u2"))

	admin := Actor{ID: "a1", Role: domain.RoleAdmin}
	assert.True(t, admin.CanAccessOwned("u2"), "default privileged roles bypass ownership")

	manager := Actor{ID: "m1", Role: domain.RoleManager}
	assert.True(t, manager.CanAccessOwned("u2"))

	// Narrowed privileged list drops the manager bypass.
	assert.False(t, manager.CanAccessOwned("u2", domain.RoleSuperAdmin))

	anonymous := Actor{}
	assert.False(t, anonymous.CanAccessOwned(""), "empty ids never match")
}

func TestViewerPermissions_ReadOnly(t *testing.T) {
	perms := Permissions(domain.RoleViewer)
	assert.Contains(t, perms, SpecialistReadAny)
	assert.Contains(t, perms, MediaRead)
	assert.NotContains(t, perms, SpecialistCreate)
	assert.NotContains(t, perms, MediaUpload)
}

// Package rbac resolves roles to permission sets and evaluates
// ownership-based access. The tables are read-only after init.
package rbac

import (
	"github.com/joychandrauday/anycomp-backend/internal/domain"
)

// Permission strings follow resource.action[.scope].
const (
	SpecialistCreate    = "specialist.create"
	SpecialistReadAny   = "specialist.read.any"
	SpecialistReadOwn   = "specialist.read.own"
	SpecialistUpdateAny = "specialist.update.any"
	SpecialistUpdateOwn = "specialist.update.own"
	SpecialistDeleteAny = "specialist.delete.any"
	SpecialistDeleteOwn = "specialist.delete.own"
	SpecialistPublish   = "specialist.publish"

	CompanyCreate           = "company.create"
	CompanyReadAny          = "company.read.any"
	CompanyReadOwn          = "company.read.own"
	CompanyUpdateAny        = "company.update.any"
	CompanyUpdateOwn        = "company.update.own"
	CompanyDeleteAny        = "company.delete.any"
	CompanyDeleteOwn        = "company.delete.own"
	CompanyManageCompliance = "company.manage.compliance"

	SecretaryCreate            = "secretary.create"
	SecretaryRead              = "secretary.read"
	SecretaryUpdate            = "secretary.update"
	SecretaryDelete            = "secretary.delete"
	SecretaryManageClients     = "secretary.manage.clients"
	SecretaryManageSpecialists = "secretary.manage.specialists"

	MediaUpload = "media.upload"
	MediaDelete = "media.delete"
	MediaRead   = "media.read"

	UserManage = "user.manage"
	UserRead   = "user.read"
	UserUpdate = "user.update"
	UserDelete = "user.delete"

	PlatformFeeManage = "platform_fee.manage"
	PlatformFeeRead   = "platform_fee.read"

	ServiceManage = "service.manage"
	ServiceRead   = "service.read"
)

var rolePermissions = map[domain.UserRole][]string{
	domain.RoleSuperAdmin: {
		SpecialistCreate, SpecialistReadAny, SpecialistUpdateAny, SpecialistDeleteAny, SpecialistPublish,
		CompanyCreate, CompanyReadAny, CompanyUpdateAny, CompanyDeleteAny, CompanyManageCompliance,
		SecretaryCreate, SecretaryRead, SecretaryUpdate, SecretaryDelete,
		SecretaryManageClients, SecretaryManageSpecialists,
		MediaUpload, MediaDelete, MediaRead,
		UserManage, UserRead, UserUpdate, UserDelete,
		PlatformFeeManage, PlatformFeeRead,
		ServiceManage, ServiceRead,
	},
	domain.RoleAdmin: {
		SpecialistCreate, SpecialistReadAny, SpecialistUpdateAny, SpecialistDeleteAny, SpecialistPublish,
		CompanyCreate, CompanyReadAny, CompanyUpdateAny, CompanyDeleteAny, CompanyManageCompliance,
		SecretaryRead, SecretaryUpdate,
		MediaUpload, MediaDelete, MediaRead,
		UserRead,
		PlatformFeeRead,
		ServiceRead,
	},
	domain.RoleManager: {
		SpecialistCreate, SpecialistReadAny, SpecialistUpdateOwn, SpecialistPublish,
		CompanyReadAny,
		SecretaryRead,
		MediaUpload, MediaRead,
	},
	domain.RoleSpecialist: {
		SpecialistReadOwn, SpecialistUpdateOwn,
		MediaUpload, MediaRead,
	},
	domain.RoleSecretary: {
		CompanyCreate, CompanyReadOwn, CompanyUpdateOwn, CompanyManageCompliance,
		SpecialistReadAny,
		MediaUpload, MediaRead,
	},
	domain.RoleClient: {
		CompanyReadOwn, CompanyUpdateOwn,
		SpecialistReadAny,
		MediaUpload, MediaRead,
	},
	domain.RoleViewer: {
		SpecialistReadAny,
		MediaRead,
	},
}

// Permissions returns the default permission set for a role. The caller
// must not mutate the returned slice.
func Permissions(role domain.UserRole) []string {
	return rolePermissions[role]
}

// EffectivePermissions is the user's explicit override list when set,
// otherwise the role defaults.
func EffectivePermissions(u *domain.User) []string {
	if len(u.Permissions) > 0 {
		return u.Permissions
	}
	return Permissions(u.Role)
}

// Actor is the authenticated principal carried through a request.
type Actor struct {
	ID          string
	Email       string
	Role        domain.UserRole
	Permissions []string
}

// HasPermission reports whether the actor holds a permission.
// Super-admins satisfy every check regardless of their explicit set.
func (a Actor) HasPermission(permission string) bool {
	if a.Role == domain.RoleSuperAdmin {
		return true
	}
	for _, p := range a.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

func (a Actor) HasAnyRole(roles ...domain.UserRole) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// CanAccessOwned evaluates the ownership rule: privileged roles bypass,
// everyone else must own the resource.
func (a Actor) CanAccessOwned(resourceOwnerID string, privileged ...domain.UserRole) bool {
	if len(privileged) == 0 {
		privileged = []domain.UserRole{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleManager}
	}
	if a.HasAnyRole(privileged...) {
		return true
	}
	return a.ID != "" && a.ID == resourceOwnerID
}

package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleAdmin      UserRole = "admin"
	RoleManager    UserRole = "manager"
	RoleSpecialist UserRole = "specialist"
	RoleSecretary  UserRole = "secretary"
	RoleClient     UserRole = "client"
	RoleViewer     UserRole = "viewer"
)

// AllRoles lists every valid role. Used for validation and for keeping
// the permission matrix exhaustive.
var AllRoles = []UserRole{
	RoleSuperAdmin, RoleAdmin, RoleManager, RoleSpecialist,
	RoleSecretary, RoleClient, RoleViewer,
}

func (r UserRole) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

type UserStatus string

const (
	UserActive              UserStatus = "active"
	UserInactive            UserStatus = "inactive"
	UserSuspended           UserStatus = "suspended"
	UserPendingVerification UserStatus = "pending_verification"
)

type User struct {
	ID           string     `gorm:"column:id;primaryKey" json:"id"`
	Email        string     `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	FullName     string     `gorm:"column:full_name" json:"full_name"`
	PhoneNumber  string     `gorm:"column:phone_number" json:"phone_number,omitempty"`
	Address      string     `gorm:"column:address" json:"address,omitempty"`
	ProfileImage string     `gorm:"column:profile_image" json:"profile_image,omitempty"`
	Role         UserRole   `gorm:"column:role;index" json:"role"`
	Status       UserStatus `gorm:"column:status;index" json:"status"`
	Department   string     `gorm:"column:department" json:"department,omitempty"`

	// Explicit permission override. When empty the role defaults apply.
	Permissions datatypes.JSONSlice[string] `gorm:"column:permissions" json:"permissions,omitempty"`

	RegistrationNumber string     `gorm:"column:registration_number" json:"registration_number,omitempty"`
	LastLoginAt        *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`

	PasswordResetToken   string     `gorm:"column:password_reset_token" json:"-"`
	PasswordResetExpires *time.Time `gorm:"column:password_reset_expires" json:"-"`

	// Self-referential manager hierarchy. Kept as a plain id column so
	// traversal stays a lookup, never pointer-following.
	ManagerID *string `gorm:"column:manager_id;index" json:"manager_id,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

func (u *User) HasAnyRole(roles ...UserRole) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

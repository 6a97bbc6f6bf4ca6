package user

type CreateUserRequest struct {
	FullName    string   `json:"full_name" binding:"required,min=2"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=8"`
	PhoneNumber string   `json:"phone_number"`
	Role        string   `json:"role" binding:"required"`
	Department  string   `json:"department"`
	ManagerID   *string  `json:"manager_id"`
	Permissions []string `json:"permissions"`
}

type UpdateUserRequest struct {
	FullName     *string `json:"full_name,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Address      *string `json:"address,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
	Department   *string `json:"department,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetPermissionsRequest replaces the explicit override list. An empty
// list clears the override so role defaults apply again.
type SetPermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

type ListQuery struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

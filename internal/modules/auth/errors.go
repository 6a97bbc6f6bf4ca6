package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrAccountNotActive     = errors.New("account is not active")
	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
	ErrRoleNotAllowed       = errors.New("role not allowed at registration")
)

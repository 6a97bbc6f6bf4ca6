package company

import "errors"

var (
	ErrNotFound          = errors.New("company not found")
	ErrRegistrationTaken = errors.New("registration number already in use")
	ErrOwnershipRequired = errors.New("not the owner of this company")
	ErrInvalidEntityType = errors.New("invalid entity type")
	ErrInvalidStatus     = errors.New("invalid company status")
)

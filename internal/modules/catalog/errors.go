package catalog

import "errors"

var (
	ErrMasterNotFound     = errors.New("service not found")
	ErrOfferingNotFound   = errors.New("offering not found")
	ErrSpecialistNotFound = errors.New("specialist not found")
	ErrOwnershipRequired  = errors.New("not the owner of this specialist")
	ErrDuplicateOffering  = errors.New("offering already exists for this specialist")
)

package media

import "errors"

var (
	ErrNotFound           = errors.New("media not found")
	ErrSpecialistNotFound = errors.New("specialist not found")
	ErrOwnershipRequired  = errors.New("not the owner of this specialist")
	ErrInvalidMediaType   = errors.New("invalid media type")
	ErrMimeNotAllowed     = errors.New("file type not allowed")
)

package specialist

import "errors"

var (
	ErrNotFound              = errors.New("specialist not found")
	ErrSlugTaken             = errors.New("slug already in use")
	ErrOwnershipRequired     = errors.New("not the owner of this specialist")
	ErrInvalidStatus         = errors.New("invalid verification status")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrNotPublic             = errors.New("specialist is not publicly visible")
	ErrVerificationForbidden = errors.New("only a super admin may change verification status")
)

package secretary

import "errors"

var (
	ErrNotFound               = errors.New("secretary not found")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrRegistrationTaken      = errors.New("registration number already in use")
	ErrNotAcceptingCompanies  = errors.New("secretary is not accepting new companies")
	ErrNotAcceptingSpecialist = errors.New("secretary is not accepting new specialists")
	ErrCompanyNotFound        = errors.New("company not found")
	ErrSpecialistNotFound     = errors.New("specialist not found")
	ErrNotAssigned            = errors.New("not assigned to this secretary")
	ErrAlreadyAssigned        = errors.New("already assigned to a secretary")
)

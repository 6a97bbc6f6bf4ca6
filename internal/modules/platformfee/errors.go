package platformfee

import "errors"

var (
	ErrNotFound     = errors.New("fee tier not found")
	ErrTierTaken    = errors.New("tier already exists")
	ErrInvalidRange = errors.New("min_value must be below max_value")
	ErrInvalidTier  = errors.New("invalid tier name")
)

package domain

import "errors"

var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrUnknownField     = errors.New("unknown field")
	ErrUnknownProvider  = errors.New("unknown provider")
	ErrProviderFailure  = errors.New("provider failure")
	ErrEmptyGeneration  = errors.New("empty generation")
	ErrInvalidFieldName = errors.New("invalid field scheme")
)

package services

import "errors"

// Service-level failures. Handlers map these onto HTTP statuses; anything
// else coming out of a service is treated as a storage failure.
var (
	ErrValidation         = errors.New("missing required field")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGameNotFound       = errors.New("game not found")
)

package domain

import "errors"

// Validation and lookup errors
var (
	ErrInvalidID           = errors.New("invalid id")
	ErrProjectNotFound     = errors.New("project not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrTaskProjectMismatch = errors.New("task does not belong to this project")
)

// Authentication and authorization errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
)

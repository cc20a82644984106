package errors

import "errors"

var (
	ErrInvalidRequest         = errors.New("invalid request")
	ErrUserNotFound           = errors.New("user not found")
	ErrResourceNotFound       = errors.New("resource not found")
	ErrAccessDenied           = errors.New("access denied")
	ErrResourceAlreadyExists  = errors.New("resource already exists")
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	ErrIdempotencyConflict    = errors.New("idempotency key conflict")
)

package repository

import "errors"

// Common storage errors. Infra implementations map their driver errors onto
// these so services never see gorm or redis error types.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry indicates a unique-constraint violation.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)

// Resource-specific aliases, kept for readable errors.Is call sites.
var (
	ErrProfileNotFound      = ErrNotFound
	ErrRoomNotFound         = ErrNotFound
	ErrMembershipNotFound   = ErrNotFound
	ErrMessageNotFound      = ErrNotFound
	ErrNotificationNotFound = ErrNotFound
	ErrOTPNotFound          = ErrNotFound
)

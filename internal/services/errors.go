package services

import "errors"

// Service-level errors. Handlers translate these into HTTP statuses.
var (
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrWeakPassword         = errors.New("password must be at least 8 characters with upper, lower, digit and special characters")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPendingVerification  = errors.New("account pending admin verification")
	ErrInvalidResetToken    = errors.New("the reset link is invalid or has expired")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidStatus        = errors.New("unrecognized account status")
	ErrUnsupportedFileType  = errors.New("only image files allowed")
	ErrScanNotFound         = errors.New("scan not found")
	ErrScanAlreadyProcessed = errors.New("scan already processed")
	ErrInferenceFailed      = errors.New("classification failed")
)

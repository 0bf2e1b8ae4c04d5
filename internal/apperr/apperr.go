// Package apperr holds the sentinel errors services return. Controllers
// translate them to HTTP statuses with errors.Is, so services never deal
// in status codes and controllers never match on error strings.
package apperr

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrScoreOutOfRange    = errors.New("score out of range")
)

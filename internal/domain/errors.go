package domain

import "errors"

// Auth errors
var (
	ErrEmailExists        = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrSamePassword       = errors.New("new password cannot be same as old password")
)

// Note errors
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrNotOwner     = errors.New("note belongs to another user")
)

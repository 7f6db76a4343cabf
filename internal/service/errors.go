package service

import "errors"

var (
	// ErrUserAlreadyExists is returned on registration email collision
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when a login credential check fails
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated is returned when an operation requires an
	// authenticated principal and none is present
	ErrUnauthenticated = errors.New("user unauthenticated")
	// ErrAccessDenied is returned when the principal is authenticated but
	// role/ownership policy forbids the action. Terminal, never retried.
	ErrAccessDenied = errors.New("access denied")
	// ErrUserNotFound is returned when a referenced user does not exist
	ErrUserNotFound = errors.New("user not found")
	// ErrTaskNotFound is returned when a referenced task does not exist
	ErrTaskNotFound = errors.New("task not found")
	// ErrCommentNotFound is returned when a referenced comment does not exist
	ErrCommentNotFound = errors.New("comment not found")
)

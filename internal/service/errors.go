package service

import "errors"

// Common service errors
var (
	// ErrTaskNotOwned indicates the caller tried to act on a task owned by
	// another account. Surfaced as a generic denial, never with detail
	// about the task itself.
	ErrTaskNotOwned = errors.New("task not owned by user")

	// ErrNotSelf indicates the caller tried to act on an account record
	// other than their own.
	ErrNotSelf = errors.New("account access restricted to owner")

	// ErrTokenInvalid indicates a recovery token that does not exist —
	// deliberately indistinguishable from one that was already used.
	ErrTokenInvalid = errors.New("invalid or already used token")

	// ErrTokenExpired indicates a recovery token whose expiry has passed.
	// The token is consumed when this error is raised, so it is reported
	// at most once per token.
	ErrTokenExpired = errors.New("token expired")

	// ErrPasswordMismatch indicates new_password and confirm_password
	// differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

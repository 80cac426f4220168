package service

import "errors"

var (
	// ErrUsernameTaken and ErrNicknameTaken are returned when the
	// registration pre-checks find an existing record.
	ErrUsernameTaken = errors.New("username already exists")
	ErrNicknameTaken = errors.New("nickname already exists")
	// ErrSignUpConflict is returned when the insert itself hits a unique
	// constraint, i.e. a concurrent registration won the race between the
	// pre-checks and the insert.
	ErrSignUpConflict = errors.New("sign up failed due to a conflict")

	// ErrUserNotFound is returned on login with an unknown username.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword is returned on login with a bad password.
	ErrWrongPassword = errors.New("incorrect password")

	// ErrInternal covers unexpected persistence or signing failures.
	ErrInternal = errors.New("internal server error")
)

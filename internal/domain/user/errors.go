package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrInvalidRoleCode   = errors.New("invalid role code")
	ErrUsernameTaken     = errors.New("username already used")
)

package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrUserBlocked    = errors.New("user is blocked")
	ErrInvalidProfile = errors.New("invalid profile")
)

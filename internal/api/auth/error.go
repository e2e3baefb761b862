package auth

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrInvalidEmailOrPassword = errors.New("invalid email or password")
	ErrInvalidToken           = errors.New("invalid token")
	ErrTokenRevoked           = errors.New("token has been revoked")
)

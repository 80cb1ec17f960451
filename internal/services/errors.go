package services

import "errors"

var (
	ErrAlreadyOnline      = errors.New("user already logged in")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUpdateFailed       = errors.New("update failed")
)

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUnauthorized        = errors.New("unauthorized access")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrForbidden = errors.New("forbidden access")
)

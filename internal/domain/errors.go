package domain

import "errors"

// Domain-level errors
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrInvalidFilter    = errors.New("invalid filter")
)

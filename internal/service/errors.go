package service

import (
	"errors"
	"fmt"
)

// The two failure kinds the core produces. Callers match with errors.Is;
// the HTTP layer maps ErrNotFound to 404 and ErrInvalidArgument to 400.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Auth failure kinds.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

func lightNotFound(id int) error {
	return fmt.Errorf("light %d: %w", id, ErrNotFound)
}

func groupNotFound(id int) error {
	return fmt.Errorf("group %d: %w", id, ErrNotFound)
}

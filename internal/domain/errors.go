package domain

import "errors"

var (
	ErrNotConfigured      = errors.New("personal access token is not configured")
	ErrInvalidFilter      = errors.New("invalid filter combination")
	ErrNotFound           = errors.New("resource not found")
	ErrNoCurrentIteration = errors.New("no current iteration for team")
)

package domain

import "errors"

var (
	ErrNotFound                = errors.New("not found")
	ErrInvalidStatusTransition = errors.New("invalid action status transition")
	ErrInvalidInput            = errors.New("invalid input")
)

// ErrRefreshInProgress means another generation pass holds the refresh lock.
var ErrRefreshInProgress = errors.New("refresh already in progress")

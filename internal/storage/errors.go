package storage

import "errors"

var (
	ErrScheduleNotFound = errors.New("schedule assignment not found")
	ErrBayNotFound      = errors.New("bay not found")
)

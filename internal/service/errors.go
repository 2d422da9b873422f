package service

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrNotMonday     = errors.New("week_start_date must be a Monday")
	ErrWeekExists    = errors.New("week with this start date already exists")
	ErrInvalidStatus = errors.New("status must be 0 (not done), 1 (done) or 2 (partial)")
)

package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidGender    = errors.New("gender must be male, female or other")
)

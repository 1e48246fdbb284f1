package policy

import "errors"

var (
	ErrPolicyNotFound = errors.New("shift policy not configured")
)

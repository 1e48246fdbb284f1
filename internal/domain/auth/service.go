package auth

import "context"

// AuthService is the shared-secret admin gate: one PIN, one token kind.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

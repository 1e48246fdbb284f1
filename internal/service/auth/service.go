package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/prostaff/attendance-backend-go/internal/domain/auth"
	"github.com/prostaff/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	jwtService jwt.Service
	pinHash    []byte
}

// NewAuthService hashes the configured admin PIN once at startup so the
// plaintext never lives past construction.
func NewAuthService(jwtService jwt.Service, adminPIN string) (auth.AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin pin: %w", err)
	}
	return &AuthServiceImpl{
		jwtService: jwtService,
		pinHash:    hash,
	}, nil
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword(s.pinHash, []byte(req.PIN)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidPIN
	}

	token, expiresAt, err := s.jwtService.GenerateAdminToken()
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

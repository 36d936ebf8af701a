package service

import (
	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/deppfellow/portfolio-api/internal/config"
)

// AuthService configures Clerk for the admin routes.
type AuthService struct {
	enabled bool
}

// NewAuthService sets the Clerk secret key. Without one, admin routes
// stay open.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	if cfg.SecretKey == "" {
		return &AuthService{}
	}
	clerk.SetKey(cfg.SecretKey)
	return &AuthService{enabled: true}
}

// Enabled reports whether admin routes require a Clerk session.
func (a *AuthService) Enabled() bool {
	return a != nil && a.enabled
}

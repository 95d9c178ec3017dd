package auth

import (
	"context"

	"github.com/ecovoit/ecovoit/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ecovoit/ecovoit/services/auth AuthGW

// AuthGW defines the interface to the upstream auth service
type AuthGW interface {
	// Login exchanges credentials for an upstream token and the account.
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)

	// CurrentUser fetches the account an upstream token belongs to.
	CurrentUser(ctx context.Context, token string) (*models.User, error)

	// Logout revokes an upstream token.
	Logout(ctx context.Context, token string) error
}

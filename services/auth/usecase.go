package auth

import (
	"context"
	"time"

	"github.com/ecovoit/ecovoit/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ecovoit/ecovoit/services/auth AuthUC

// LoginResult is what a successful login produces: the account plus the
// signed session token the handler turns into a cookie.
type LoginResult struct {
	User         models.User
	SessionToken string
	ExpiresAt    time.Time
}

// AuthUC defines the authentication use case interface. It owns the
// session lifecycle: the upstream auth token is exchanged at login for a
// server-side session and never reaches the browser.
type AuthUC interface {
	// Login verifies credentials against the auth service and mints a
	// new session.
	Login(ctx context.Context, creds models.Credentials) (*LoginResult, error)

	// Logout destroys the session server-side and revokes the upstream
	// token best-effort.
	Logout(ctx context.Context, sessionID string) error

	// CurrentUser fetches the account behind a session. A session whose
	// upstream token died is destroyed as a side effect.
	CurrentUser(ctx context.Context, sessionID string) (*models.User, error)

	// Resolve loads the session record a request's token refers to.
	Resolve(ctx context.Context, sessionID string) (*models.Session, error)
}

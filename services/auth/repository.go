package auth

import (
	"context"
	"time"

	"github.com/ecovoit/ecovoit/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ecovoit/ecovoit/services/auth SessionRepo

// SessionRepo defines the server-side session store
type SessionRepo interface {
	// Create stores a session record under its ID with the given TTL.
	Create(ctx context.Context, session *models.Session, ttl time.Duration) error

	// Get loads a session by ID; a missing or expired session is an error.
	Get(ctx context.Context, sessionID string) (*models.Session, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, sessionID string) error
}

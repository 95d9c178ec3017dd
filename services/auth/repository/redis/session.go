package redis_repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ecovoit/ecovoit/internal/pkg/database"
	apperrors "github.com/ecovoit/ecovoit/internal/pkg/errors"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/services/auth"
)

const sessionKeyPrefix = "session:"

// SessionRepo stores session records in Redis as JSON, expiring with the
// session itself
type SessionRepo struct {
	redis *database.RedisClient
}

// NewSessionRepo creates a new Redis-backed session repository
func NewSessionRepo(redisClient *database.RedisClient) auth.SessionRepo {
	return &SessionRepo{redis: redisClient}
}

// Create stores a session under its ID with the given TTL
func (r *SessionRepo) Create(ctx context.Context, session *models.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.redis.Set(ctx, sessionKeyPrefix+session.ID, payload, ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get loads a session by ID. A key Redis already expired reads the same
// as one that never existed.
func (r *SessionRepo) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	payload, err := r.redis.Get(ctx, sessionKeyPrefix+sessionID)
	if err == redis.Nil {
		return nil, fmt.Errorf("session %s not found: %w", sessionID, apperrors.ErrSessionExpired)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a session; deleting a missing key is a no-op
func (r *SessionRepo) Delete(ctx context.Context, sessionID string) error {
	return r.redis.Delete(ctx, sessionKeyPrefix+sessionID)
}

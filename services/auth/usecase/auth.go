package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	apperrors "github.com/ecovoit/ecovoit/internal/pkg/errors"
	jwtpkg "github.com/ecovoit/ecovoit/internal/pkg/jwt"
	"github.com/ecovoit/ecovoit/internal/pkg/logger"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/services/auth"
)

// authUC implements the auth.AuthUC interface
type authUC struct {
	cfg      *models.Config
	authGW   auth.AuthGW
	sessions auth.SessionRepo
	now      func() time.Time
}

// NewAuthUC creates a new auth use case
func NewAuthUC(cfg *models.Config, authGW auth.AuthGW, sessions auth.SessionRepo) auth.AuthUC {
	return &authUC{
		cfg:      cfg,
		authGW:   authGW,
		sessions: sessions,
		now:      time.Now,
	}
}

// Login verifies credentials upstream, then mints a server-side session
// holding the upstream token. Only the signed session reference goes back
// to the browser.
func (uc *authUC) Login(ctx context.Context, creds models.Credentials) (*auth.LoginResult, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", apperrors.ErrValidation)
	}

	upstream, err := uc.authGW.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.cfg.JWT.Expiration) * time.Minute
	now := uc.now()
	session := &models.Session{
		ID:            uuid.New().String(),
		UserID:        upstream.User.ID,
		Role:          upstream.User.Role,
		UpstreamToken: upstream.Token,
		CreatedAt:     now,
		ExpiresAt:     now.Add(ttl),
	}
	if err := uc.sessions.Create(ctx, session, ttl); err != nil {
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateSessionToken(session.ID, session.UserID, session.Role, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	logger.Info("user logged in", logrus.Fields{
		"user_id":    session.UserID,
		"session_id": session.ID,
		"role":       session.Role,
	})
	return &auth.LoginResult{
		User:         upstream.User,
		SessionToken: token,
		ExpiresAt:    time.Unix(expiresAt, 0),
	}, nil
}

// Logout destroys the session. The upstream token is revoked best-effort:
// the session record is gone either way, which is what actually logs the
// browser out.
func (uc *authUC) Logout(ctx context.Context, sessionID string) error {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err == nil {
		if err := uc.authGW.Logout(ctx, session.UpstreamToken); err != nil {
			logger.Warn("upstream logout failed", logrus.Fields{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	}
	return uc.sessions.Delete(ctx, sessionID)
}

// CurrentUser fetches the account behind a session. If the upstream token
// died while the session record is still alive, the session is destroyed
// so the next request fails fast at the middleware.
func (uc *authUC) CurrentUser(ctx context.Context, sessionID string) (*models.User, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := uc.authGW.CurrentUser(ctx, session.UpstreamToken)
	if apperrors.IsSessionExpired(err) {
		if delErr := uc.sessions.Delete(ctx, sessionID); delErr != nil {
			logger.Error("failed to destroy dead session", logrus.Fields{
				"session_id": sessionID,
				"error":      delErr.Error(),
			})
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Resolve loads the session a request's token refers to
func (uc *authUC) Resolve(ctx context.Context, sessionID string) (*models.Session, error) {
	return uc.sessions.Get(ctx, sessionID)
}

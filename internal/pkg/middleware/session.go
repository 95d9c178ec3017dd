package middleware

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/ecovoit/ecovoit/internal/pkg/jwt"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/internal/utils"
)

// Context keys set by the session middleware
const (
	ContextKeyUserID        = "user_id"
	ContextKeyUserRole      = "user_role"
	ContextKeySessionID     = "session_id"
	ContextKeyUpstreamToken = "upstream_token"
)

// SessionResolver loads the server-side session a token refers to. A
// missing or expired session must return an error.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*models.Session, error)
}

// SessionMiddleware authenticates requests via the session cookie (or a
// bearer token as fallback), resolves the server-side session, and puts
// the viewer's identity and upstream token into the request context.
func SessionMiddleware(config models.JWTConfig, sessions SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := extractToken(c, config.CookieName)
			if tokenString == "" {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid session token")
			}

			sessionID, ok := (*claims)["session_id"].(string)
			if !ok || sessionID == "" {
				return utils.UnauthorizedResponse(c, "Invalid session token: missing session_id claim")
			}

			session, err := sessions.Resolve(c.Request().Context(), sessionID)
			if err != nil {
				// Session destroyed or expired server-side; the cookie is
				// worthless now.
				clearSessionCookie(c, config.CookieName)
				return utils.UnauthorizedResponse(c, "Session expired")
			}

			c.Set(ContextKeyUserID, session.UserID)
			c.Set(ContextKeyUserRole, session.Role)
			c.Set(ContextKeySessionID, session.ID)
			c.Set(ContextKeyUpstreamToken, session.UpstreamToken)

			return next(c)
		}
	}
}

// RequireRole gates a route group to a single role. Must run after
// SessionMiddleware.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if UserRoleFromContext(c) != role {
				return utils.ForbiddenResponse(c, fmt.Sprintf("Requires %s role", role))
			}
			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user's ID
func UserIDFromContext(c echo.Context) string {
	id, _ := c.Get(ContextKeyUserID).(string)
	return id
}

// UserRoleFromContext returns the authenticated user's role
func UserRoleFromContext(c echo.Context) string {
	role, _ := c.Get(ContextKeyUserRole).(string)
	return role
}

// SessionIDFromContext returns the current session ID
func SessionIDFromContext(c echo.Context) string {
	id, _ := c.Get(ContextKeySessionID).(string)
	return id
}

// UpstreamTokenFromContext returns the upstream auth token held by the
// current session
func UpstreamTokenFromContext(c echo.Context) string {
	token, _ := c.Get(ContextKeyUpstreamToken).(string)
	return token
}

func extractToken(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	const prefix = "Bearer "
	if len(authHeader) > len(prefix) && authHeader[:len(prefix)] == prefix {
		return authHeader[len(prefix):]
	}
	return ""
}

func clearSessionCookie(c echo.Context, cookieName string) {
	c.SetCookie(utils.ExpiredSessionCookie(cookieName))
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "github.com/ecovoit/ecovoit/internal/pkg/errors"
	"github.com/ecovoit/ecovoit/internal/pkg/logger"
	"github.com/ecovoit/ecovoit/internal/pkg/middleware"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/internal/utils"
	"github.com/ecovoit/ecovoit/services/auth"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authUC auth.AuthUC
	jwtCfg models.JWTConfig
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC auth.AuthUC, jwtCfg models.JWTConfig) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		jwtCfg: jwtCfg,
	}
}

// Login authenticates credentials and sets the session cookie
func (h *AuthHandler) Login(c echo.Context) error {
	var creds models.Credentials
	if err := c.Bind(&creds); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.authUC.Login(c.Request().Context(), creds)
	switch {
	case err == nil:
	case apperrors.IsValidation(err):
		return utils.BadRequestResponse(c, err.Error())
	case apperrors.IsInvalidCredentials(err):
		return utils.UnauthorizedResponse(c, "Invalid email or password")
	default:
		logger.Error("login failed", logrus.Fields{"error": err.Error()})
		return utils.BadGatewayResponse(c, "Authentication service unavailable")
	}

	c.SetCookie(utils.SessionCookie(h.jwtCfg.CookieName, result.SessionToken, result.ExpiresAt))
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", result.User)
}

// Logout destroys the session and clears the cookie
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID := middleware.SessionIDFromContext(c)
	if err := h.authUC.Logout(c.Request().Context(), sessionID); err != nil {
		logger.Error("logout failed", logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return utils.InternalServerErrorResponse(c, "Failed to log out")
	}

	c.SetCookie(utils.ExpiredSessionCookie(h.jwtCfg.CookieName))
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// CurrentUser returns the account behind the current session
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	user, err := h.authUC.CurrentUser(c.Request().Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		if apperrors.IsSessionExpired(err) {
			// The upstream token died; the session is already destroyed.
			c.SetCookie(utils.ExpiredSessionCookie(h.jwtCfg.CookieName))
			return utils.UnauthorizedResponse(c, "Session expired, please log in again")
		}
		logger.Error("failed to fetch current user", logrus.Fields{"error": err.Error()})
		return utils.BadGatewayResponse(c, "Authentication service unavailable")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Current user", user)
}

// RegisterPublicRoutes registers the routes reachable without a session
func (h *AuthHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/auth/login", h.Login)
}

// RegisterRoutes registers the session-protected auth routes
func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/auth/logout", h.Logout)
	g.GET("/auth/me", h.CurrentUser)
}

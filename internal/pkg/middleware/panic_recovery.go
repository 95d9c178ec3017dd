package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/ecovoit/ecovoit/internal/pkg/logger"
	"github.com/ecovoit/ecovoit/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace, and answers with a 500 instead of dropping the connection
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					logger.Error("panic recovered", logrus.Fields{
						"error":  err.Error(),
						"method": c.Request().Method,
						"path":   c.Request().URL.Path,
						"stack":  string(debug.Stack()),
					})

					if !c.Response().Committed {
						_ = utils.InternalServerErrorResponse(c, "Internal server error")
					}
				}
			}()

			return next(c)
		}
	}
}

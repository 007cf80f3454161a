package echoapi

import (
	"github.com/labstack/echo/v4"
)

// confirmMiddleware rejects requests that were not confirmed with ?confirm=true.
func confirmMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !confirmed(ctx) {
				return errConfirmationRequired
			}
			return next(ctx)
		}
	}
}

package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// StoreTimeout bounds every request context, so no store call behind a
// handler may block indefinitely. Deadline expiration surfaces to the
// caller as a retryable storage failure.
func StoreTimeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

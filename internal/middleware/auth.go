package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/salescrm/internal/auth"
)

const callerIDContextKey = "callerId"

// Authorize verifies bearer token and attaches verified caller identity
// to the request context. Everything behind it may trust CallerID.
func Authorize(validator *auth.JwtValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHdr := c.Request().Header.Get("Authorization")
			hdrSplit := strings.Split(authHdr, " ")
			if len(hdrSplit) != 2 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid Authorization header format")
			}

			claims, err := validator.Verify(hdrSplit[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(callerIDContextKey, claims.Subject)
			return next(c)
		}
	}
}

// CallerID returns identity attached by Authorize middleware
func CallerID(c echo.Context) string {
	id, _ := c.Get(callerIDContextKey).(string)
	return id
}

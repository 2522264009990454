package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
	"github.com/brokerdesk/employee-portal/internal/core/ports"
)

// SessionCookieName is the cookie the login handler sets and this
// middleware reads.
const SessionCookieName = "portal_session"

// userContextKey is where the resolved session user is stored on the echo
// context.
const userContextKey = "session_user"

// Session validates the session cookie and injects the session user into
// the request context. Requests with no cookie, or a token the store no
// longer knows, are rejected with 401.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized. Please log in.")
			}

			user, err := auth.Validate(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized. Please log in.")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// WithSessionUser stores user on the context the way Session does, for
// handlers exercised outside the middleware chain.
func WithSessionUser(c echo.Context, user domain.SessionUser) {
	c.Set(userContextKey, user)
}

// SessionUser extracts the user injected by Session. The boolean is false
// when the middleware did not run on this route.
func SessionUser(c echo.Context) (domain.SessionUser, bool) {
	user, ok := c.Get(userContextKey).(domain.SessionUser)
	return user, ok
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventfold/eventfold/pkg/guard"
)

// Guard gates a route group on the session's auth state. Redirect
// decisions become 302s for page requests; the Loading state (manifest
// not yet available) maps to 503 so the browser retries.
func Guard(req guard.Requirements) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			mgr := Manager(c)
			if mgr == nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "no session on context")
			}

			state := mgr.State(c.Request().Context())
			switch d := guard.Decide(state, req); d.Kind {
			case guard.Loading:
				return echo.NewHTTPError(http.StatusServiceUnavailable, "authorization manifest not ready")
			case guard.Redirect:
				return c.Redirect(http.StatusFound, d.Target)
			default:
				return next(c)
			}
		}
	}
}

package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventfold/eventfold/internal/audit"
	mw "github.com/eventfold/eventfold/internal/middleware"
	"github.com/eventfold/eventfold/pkg/api"
	"github.com/eventfold/eventfold/pkg/logging"
)

type SessionHandler struct {
	Audit *audit.Producer
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *SessionHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "session.login")

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Email == "" || req.Password == "" {
		l.Warn("login_error", "status", 400, "reason", "missing credentials")
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	mgr := mw.Manager(c)
	if err := mgr.Login(ctx, req.Email, req.Password); err != nil {
		if api.IsStatus(err, http.StatusUnauthorized) || api.IsStatus(err, http.StatusUnprocessableEntity) {
			l.Warn("login_error", "status", 401, "reason", "bad credentials")
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
		}
		l.Error("login_error", "status", 502, "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "platform unavailable")
	}

	user := mgr.User()
	userUUID := ""
	if user != nil {
		userUUID = user.UUID
	}
	h.Audit.Publish(ctx, audit.Event{Action: "session.login", Session: mw.SessionID(c), UserUUID: userUUID})

	return c.JSON(http.StatusOK, map[string]any{"user_uuid": userUUID})
}

func (h *SessionHandler) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "session.refresh")

	mgr := mw.Manager(c)
	if err := mgr.Refresh(ctx); err != nil {
		l.Warn("refresh_error", "status", 401, "error", err)
		h.Audit.Publish(ctx, audit.Event{Action: "session.refresh_failed", Session: mw.SessionID(c)})
		return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SessionHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	mgr := mw.Manager(c)
	user := mgr.User()
	userUUID := ""
	if user != nil {
		userUUID = user.UUID
	}
	_ = mgr.Logout(ctx)

	h.Audit.Publish(ctx, audit.Event{Action: "session.logout", Session: mw.SessionID(c), UserUUID: userUUID})
	return c.NoContent(http.StatusNoContent)
}

// Me returns the cached user record plus derived role flags, the
// payload every dashboard view starts from.
func (h *SessionHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "session.me")

	cl := mw.Client(c)
	user, err := cl.Me(ctx)
	if err != nil {
		l.Warn("me_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	flags, err := cl.MyRoles(ctx)
	if err != nil {
		l.Error("me_roles_error", "status", 502, "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "cannot resolve roles")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user": user,
		"roles": map[string]bool{
			"is_admin":          flags.IsAdmin,
			"is_organizer":      flags.IsOrganizer,
			"is_course_manager": flags.IsCourseManager,
			"is_attendee":       flags.IsAttendee,
		},
	})
}

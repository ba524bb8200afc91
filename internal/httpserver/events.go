package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/eventfold/eventfold/internal/audit"
	mw "github.com/eventfold/eventfold/internal/middleware"
	"github.com/eventfold/eventfold/internal/util"
	"github.com/eventfold/eventfold/pkg/api"
	"github.com/eventfold/eventfold/pkg/logging"
)

type EventHandler struct {
	Audit *audit.Producer
}

func listOpts(c echo.Context) api.ListOptions {
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	page, size = util.Clamp(page, size)
	return api.ListOptions{Page: page, Size: size}
}

func pathUUID(c echo.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}
	return id.String(), nil
}

// platformErr maps an upstream failure onto this gateway's response:
// the platform's own 4xx pass through, everything else is a 502.
func platformErr(err error) error {
	for _, status := range []int{400, 401, 403, 404, 409, 422} {
		if api.IsStatus(err, status) {
			return echo.NewHTTPError(status, err.Error())
		}
	}
	return echo.NewHTTPError(http.StatusBadGateway, "platform unavailable")
}

func (h *EventHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "events.list")

	page, err := mw.Client(c).ListEvents(ctx, listOpts(c))
	if err != nil {
		l.Error("list_events_error", "error", err)
		return platformErr(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *EventHandler) ListPublic(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "events.list_public")

	page, err := mw.Client(c).ListPublicEvents(ctx, listOpts(c))
	if err != nil {
		l.Error("list_public_events_error", "error", err)
		return platformErr(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *EventHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "events.get")

	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	ev, err := mw.Client(c).GetEvent(ctx, id)
	if err != nil {
		l.Warn("get_event_error", "event", id, "error", err)
		return platformErr(err)
	}
	return c.JSON(http.StatusOK, ev)
}

func (h *EventHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "events.create")

	var req api.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_event_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	ev, err := mw.Client(c).CreateEvent(ctx, req)
	if err != nil {
		l.Error("create_event_error", "error", err)
		return platformErr(err)
	}

	h.Audit.Publish(ctx, audit.Event{
		Action:  "event.created",
		Session: mw.SessionID(c),
		Detail:  map[string]any{"event_uuid": ev.UUID},
	})
	return c.JSON(http.StatusCreated, ev)
}

func (h *EventHandler) Patch(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "events.patch")

	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	var req api.PatchEventRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_event_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	ev, err := mw.Client(c).UpdateEvent(ctx, id, req)
	if err != nil {
		l.Error("patch_event_error", "event", id, "error", err)
		return platformErr(err)
	}

	h.Audit.Publish(ctx, audit.Event{
		Action:  "event.updated",
		Session: mw.SessionID(c),
		Detail:  map[string]any{"event_uuid": id},
	})
	return c.JSON(http.StatusOK, ev)
}

func (h *EventHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "events.delete")

	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	if err := mw.Client(c).DeleteEvent(ctx, id); err != nil {
		l.Error("delete_event_error", "event", id, "error", err)
		return platformErr(err)
	}

	h.Audit.Publish(ctx, audit.Event{
		Action:  "event.deleted",
		Session: mw.SessionID(c),
		Detail:  map[string]any{"event_uuid": id},
	})
	return c.NoContent(http.StatusNoContent)
}

func (h *EventHandler) Registrations(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "events.registrations")

	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	page, err := mw.Client(c).RegistrationsForEvent(ctx, id, listOpts(c))
	if err != nil {
		l.Error("event_registrations_error", "event", id, "error", err)
		return platformErr(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *EventHandler) Certificates(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "events.certificates")

	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	page, err := mw.Client(c).CertificatesForEvent(ctx, id, listOpts(c))
	if err != nil {
		l.Error("event_certificates_error", "event", id, "error", err)
		return platformErr(err)
	}
	return c.JSON(http.StatusOK, page)
}

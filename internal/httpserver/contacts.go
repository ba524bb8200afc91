package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventfold/eventfold/internal/audit"
	mw "github.com/eventfold/eventfold/internal/middleware"
	"github.com/eventfold/eventfold/pkg/api"
	"github.com/eventfold/eventfold/pkg/logging"
)

type ContactListHandler struct {
	Audit *audit.Producer
}

func (h *ContactListHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "contacts.list")

	page, err := mw.Client(c).ListContactLists(ctx, listOpts(c))
	if err != nil {
		l.Error("list_contact_lists_error", "error", err)
		return platformErr(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *ContactListHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "contacts.get")

	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	cl, err := mw.Client(c).GetContactList(ctx, id)
	if err != nil {
		l.Warn("get_contact_list_error", "contact_list", id, "error", err)
		return platformErr(err)
	}
	return c.JSON(http.StatusOK, cl)
}

func (h *ContactListHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "contacts.create")

	var req api.CreateContactListRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_contact_list_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	cl, err := mw.Client(c).CreateContactList(ctx, req)
	if err != nil {
		l.Error("create_contact_list_error", "error", err)
		return platformErr(err)
	}

	h.Audit.Publish(ctx, audit.Event{
		Action:  "contact_list.created",
		Session: mw.SessionID(c),
		Detail:  map[string]any{"contact_list_uuid": cl.UUID},
	})
	return c.JSON(http.StatusCreated, cl)
}

func (h *ContactListHandler) Patch(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "contacts.patch")

	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	var req api.PatchContactListRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_contact_list_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	cl, err := mw.Client(c).UpdateContactList(ctx, id, req)
	if err != nil {
		l.Error("patch_contact_list_error", "contact_list", id, "error", err)
		return platformErr(err)
	}

	h.Audit.Publish(ctx, audit.Event{
		Action:  "contact_list.updated",
		Session: mw.SessionID(c),
		Detail:  map[string]any{"contact_list_uuid": id},
	})
	return c.JSON(http.StatusOK, cl)
}

func (h *ContactListHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "contacts.delete")

	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	if err := mw.Client(c).DeleteContactList(ctx, id); err != nil {
		l.Error("delete_contact_list_error", "contact_list", id, "error", err)
		return platformErr(err)
	}

	h.Audit.Publish(ctx, audit.Event{
		Action:  "contact_list.deleted",
		Session: mw.SessionID(c),
		Detail:  map[string]any{"contact_list_uuid": id},
	})
	return c.NoContent(http.StatusNoContent)
}

package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventfold/eventfold/internal/audit"
	mw "github.com/eventfold/eventfold/internal/middleware"
	"github.com/eventfold/eventfold/pkg/api"
	"github.com/eventfold/eventfold/pkg/logging"
)

type OrganizationHandler struct {
	Audit *audit.Producer
}

func (h *OrganizationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "organizations.list")

	page, err := mw.Client(c).ListOrganizations(ctx, listOpts(c))
	if err != nil {
		l.Error("list_organizations_error", "error", err)
		return platformErr(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *OrganizationHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "organizations.get")

	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	org, err := mw.Client(c).GetOrganization(ctx, id)
	if err != nil {
		l.Warn("get_organization_error", "organization", id, "error", err)
		return platformErr(err)
	}
	return c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) Members(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "organizations.members")

	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	page, err := mw.Client(c).OrganizationMembers(ctx, id, listOpts(c))
	if err != nil {
		l.Error("organization_members_error", "organization", id, "error", err)
		return platformErr(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *OrganizationHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "organizations.create")

	var req api.CreateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_organization_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	org, err := mw.Client(c).CreateOrganization(ctx, req)
	if err != nil {
		l.Error("create_organization_error", "error", err)
		return platformErr(err)
	}

	h.Audit.Publish(ctx, audit.Event{
		Action:  "organization.created",
		Session: mw.SessionID(c),
		Detail:  map[string]any{"organization_uuid": org.UUID},
	})
	return c.JSON(http.StatusCreated, org)
}

func (h *OrganizationHandler) Patch(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "organizations.patch")

	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	var req api.PatchOrganizationRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_organization_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	org, err := mw.Client(c).UpdateOrganization(ctx, id, req)
	if err != nil {
		l.Error("patch_organization_error", "organization", id, "error", err)
		return platformErr(err)
	}

	h.Audit.Publish(ctx, audit.Event{
		Action:  "organization.updated",
		Session: mw.SessionID(c),
		Detail:  map[string]any{"organization_uuid": id},
	})
	return c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "organizations.delete")

	id, err := pathUUID(c)
	if err != nil {
		return err
	}
	if err := mw.Client(c).DeleteOrganization(ctx, id); err != nil {
		l.Error("delete_organization_error", "organization", id, "error", err)
		return platformErr(err)
	}

	h.Audit.Publish(ctx, audit.Event{
		Action:  "organization.deleted",
		Session: mw.SessionID(c),
		Detail:  map[string]any{"organization_uuid": id},
	})
	return c.NoContent(http.StatusNoContent)
}

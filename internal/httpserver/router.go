package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	ecM "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eventfold/eventfold/internal/audit"
	mw "github.com/eventfold/eventfold/internal/middleware"
	"github.com/eventfold/eventfold/pkg/guard"
)

type Deps struct {
	Log      *slog.Logger
	Resolver *mw.Resolver
	Audit    *audit.Producer
	ES       *elasticsearch.Client
	ESIndex  string
	Registry *prometheus.Registry
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if d.Registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}

	e.Use(ecM.Recover(), ecM.RequestID(), ecM.Secure())
	e.Use(mw.RequestLogger(d.Log))
	e.Use(mw.Resolve(d.Resolver))

	sessions := &SessionHandler{Audit: d.Audit}
	events := &EventHandler{Audit: d.Audit}
	orgs := &OrganizationHandler{Audit: d.Audit}
	contacts := &ContactListHandler{Audit: d.Audit}

	api := e.Group("/api/v1")

	api.POST("/session/login", sessions.Login)
	api.POST("/session/refresh", sessions.Refresh)
	api.DELETE("/session", sessions.Logout)

	// public event listing needs no auth at all
	api.GET("/events/public", events.ListPublic)

	authed := api.Group("", mw.Guard(guard.Requirements{}))
	authed.GET("/session/me", sessions.Me)

	ev := api.Group("/events", mw.Guard(guard.Requirements{Route: "events"}))
	ev.GET("", events.List)
	ev.GET("/:id", events.Get)
	ev.POST("", events.Create)
	ev.PATCH("/:id", events.Patch)
	ev.DELETE("/:id", events.Delete)
	ev.GET("/:id/registrations", events.Registrations)
	ev.GET("/:id/certificates", events.Certificates)

	og := api.Group("/organizations", mw.Guard(guard.Requirements{Route: "organizations"}))
	og.GET("", orgs.List)
	og.GET("/:id", orgs.Get)
	og.GET("/:id/members", orgs.Members)
	og.POST("", orgs.Create)
	og.PATCH("/:id", orgs.Patch)
	og.DELETE("/:id", orgs.Delete)

	cl := api.Group("/contact-lists", mw.Guard(guard.Requirements{Route: "contacts", Feature: "contact_lists"}))
	cl.GET("", contacts.List)
	cl.GET("/:id", contacts.Get)
	cl.POST("", contacts.Create)
	cl.PATCH("/:id", contacts.Patch)
	cl.DELETE("/:id", contacts.Delete)

	if d.ES != nil {
		sh := &SearchHandler{ES: d.ES, Index: d.ESIndex}
		api.GET("/search/events", sh.Events, mw.Guard(guard.Requirements{Route: "events"}))
	}
}

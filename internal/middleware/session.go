package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/eventfold/eventfold/pkg/api"
	"github.com/eventfold/eventfold/pkg/client"
	"github.com/eventfold/eventfold/pkg/querycache"
	"github.com/eventfold/eventfold/pkg/session"
	"github.com/eventfold/eventfold/pkg/tokenstore"
)

const (
	SessionCookie = "ef_session"

	CtxSessionID = "session_id"
	CtxManager   = "session_manager"
	CtxClient    = "platform_client"
)

// Resolver builds the per-session SDK objects: a gorm token store
// scoped to the session ID, an API client whose bearer token comes
// from that store, and a session-prefixed view of the shared cache.
type Resolver struct {
	DB          *gorm.DB
	PlatformURL string
	Cache       *querycache.Cache
	HTTP        *http.Client
}

func (r *Resolver) Manager(sessionID string) (*session.Manager, *client.Client) {
	store := tokenstore.NewGorm(r.DB, sessionID)
	// reads on this path go through the cache, which already retries
	// once; the API client must not add its own round
	apiClient := api.NewClient(r.PlatformURL,
		api.WithHTTPClient(r.HTTP),
		api.WithTokenSource(store),
		api.WithReadRetries(0),
	)
	view := r.Cache.View("session", sessionID)
	return session.New(apiClient, store, view), client.New(apiClient, view)
}

// Resolve attaches the session objects to the echo context. A missing
// cookie mints a fresh session ID; the cookie is set on the way out so
// login can bind tokens to it.
func Resolve(r *Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
				sid = ck.Value
			}
			if sid == "" {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    sid,
					Path:     "/",
					Expires:  time.Now().Add(30 * 24 * time.Hour),
					HttpOnly: true,
					Secure:   true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			mgr, cl := r.Manager(sid)
			c.Set(CtxSessionID, sid)
			c.Set(CtxManager, mgr)
			c.Set(CtxClient, cl)
			return next(c)
		}
	}
}

func SessionID(c echo.Context) string {
	sid, _ := c.Get(CtxSessionID).(string)
	return sid
}

func Manager(c echo.Context) *session.Manager {
	mgr, _ := c.Get(CtxManager).(*session.Manager)
	return mgr
}

func Client(c echo.Context) *client.Client {
	cl, _ := c.Get(CtxClient).(*client.Client)
	return cl
}

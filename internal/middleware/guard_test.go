package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfold/eventfold/pkg/api"
	"github.com/eventfold/eventfold/pkg/guard"
	"github.com/eventfold/eventfold/pkg/querycache"
	"github.com/eventfold/eventfold/pkg/session"
	"github.com/eventfold/eventfold/pkg/tokenstore"
)

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_uuid": "u-1",
		"exp":       time.Now().Add(ttl).Unix(),
	})
	raw, err := tok.SignedString([]byte("guard-test-secret"))
	require.NoError(t, err)
	return raw
}

// newGuardManager wires a session manager the way the resolver does:
// memory store, no API-client retries (the cache owns them).
func newGuardManager(t *testing.T, platform http.Handler) *session.Manager {
	t.Helper()
	srv := httptest.NewServer(platform)
	t.Cleanup(srv.Close)

	cache := querycache.New(querycache.Options{})
	t.Cleanup(cache.Close)

	store := tokenstore.NewMemory()
	apiClient := api.NewClient(srv.URL,
		api.WithTokenSource(store),
		api.WithReadRetries(0),
	)
	return session.New(apiClient, store, cache.View())
}

func guardContext(mgr *session.Manager) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if mgr != nil {
		c.Set(CtxManager, mgr)
	}
	return c, rec
}

func manifestHandler(m api.Manifest) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(m)
	})
}

func TestGuard_AnonymousRedirectsToLogin(t *testing.T) {
	t.Parallel()

	mgr := newGuardManager(t, http.NotFoundHandler())
	c, rec := guardContext(mgr)

	nextCalled := false
	h := Guard(guard.Requirements{Route: "events"})(func(c echo.Context) error {
		nextCalled = true
		return nil
	})

	require.NoError(t, h(c))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestGuard_ManifestUnavailableIs503(t *testing.T) {
	t.Parallel()

	mgr := newGuardManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	require.NoError(t, mgr.Store.SetToken(signedToken(t, time.Hour), ""))

	c, _ := guardContext(mgr)
	h := Guard(guard.Requirements{Route: "events"})(func(c echo.Context) error {
		t.Fatal("next must not run while the manifest is unavailable")
		return nil
	})

	err := h(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
}

func TestGuard_MissingRouteRedirectsToFallback(t *testing.T) {
	t.Parallel()

	mgr := newGuardManager(t, manifestHandler(api.Manifest{Routes: []string{"dashboard"}}))
	require.NoError(t, mgr.Store.SetToken(signedToken(t, time.Hour), ""))

	c, rec := guardContext(mgr)
	h := Guard(guard.Requirements{Route: "events"})(func(c echo.Context) error { return nil })

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestGuard_AuthorizedCallsNext(t *testing.T) {
	t.Parallel()

	mgr := newGuardManager(t, manifestHandler(api.Manifest{Routes: []string{"events"}}))
	require.NoError(t, mgr.Store.SetToken(signedToken(t, time.Hour), ""))

	c, _ := guardContext(mgr)
	nextCalled := false
	h := Guard(guard.Requirements{Route: "events"})(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, h(c))
	assert.True(t, nextCalled)
}

func TestGuard_NoSessionOnContext(t *testing.T) {
	t.Parallel()

	c, _ := guardContext(nil)
	h := Guard(guard.Requirements{})(func(c echo.Context) error { return nil })

	err := h(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
}

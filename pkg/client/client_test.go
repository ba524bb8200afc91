package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfold/eventfold/pkg/api"
	"github.com/eventfold/eventfold/pkg/querycache"
)

// fakePlatform serves a single mutable event collection and counts
// requests per method+path so tests can assert what hit the network.
type fakePlatform struct {
	mu     sync.Mutex
	calls  map[string]int
	events map[string]api.Event
}

func newFakePlatform(events ...api.Event) *fakePlatform {
	p := &fakePlatform{calls: map[string]int{}, events: map[string]api.Event{}}
	for _, ev := range events {
		p.events[ev.UUID] = ev
	}
	return p
}

func (p *fakePlatform) count(key string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[key]
}

func (p *fakePlatform) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	p.calls[r.Method+" "+r.URL.Path]++

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/v1/events":
		page := api.Page[api.Event]{Results: []api.Event{}}
		for _, ev := range p.events {
			page.Results = append(page.Results, ev)
		}
		page.Count = len(page.Results)
		p.mu.Unlock()
		_ = json.NewEncoder(w).Encode(page)

	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/registrations"):
		p.mu.Unlock()
		_ = json.NewEncoder(w).Encode(api.Page[api.Registration]{Results: []api.Registration{}})

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/v1/events/"):
		uuid := strings.TrimPrefix(r.URL.Path, "/api/v1/events/")
		ev, ok := p.events[uuid]
		p.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "no such event", "code": "not_found"})
			return
		}
		_ = json.NewEncoder(w).Encode(ev)

	case r.Method == http.MethodPost && r.URL.Path == "/api/v1/events":
		var req api.CreateEventRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		ev := api.Event{UUID: "e-new", Title: req.Title}
		p.events[ev.UUID] = ev
		p.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(ev)

	case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/api/v1/events/"):
		uuid := strings.TrimPrefix(r.URL.Path, "/api/v1/events/")
		var req api.PatchEventRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		ev := p.events[uuid]
		if req.Title != nil {
			ev.Title = *req.Title
		}
		p.events[uuid] = ev
		p.mu.Unlock()
		_ = json.NewEncoder(w).Encode(ev)

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/v1/events/"):
		uuid := strings.TrimPrefix(r.URL.Path, "/api/v1/events/")
		delete(p.events, uuid)
		p.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)

	default:
		p.mu.Unlock()
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "not found", "code": "not_found"})
	}
}

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cache := querycache.New(querycache.Options{})
	t.Cleanup(cache.Close)
	// the cache owns the read retry, so the API client runs with none
	return New(api.NewClient(srv.URL, api.WithReadRetries(0)), cache.View())
}

func waitForValue(t *testing.T, ch <-chan any) any {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a background refetch")
		return nil
	}
}

func TestReads_ServeFromCache(t *testing.T) {
	t.Parallel()

	p := newFakePlatform(api.Event{UUID: "e1", Title: "GopherCon"})
	c := newTestClient(t, p)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		page, err := c.ListEvents(ctx, api.ListOptions{})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Count)
	}
	assert.Equal(t, 1, p.count("GET /api/v1/events"))

	for i := 0; i < 3; i++ {
		ev, err := c.GetEvent(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, "GopherCon", ev.Title)
	}
	assert.Equal(t, 1, p.count("GET /api/v1/events/e1"))
}

func TestReads_RetryOnceAcrossLayers(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cache := querycache.New(querycache.Options{})
	t.Cleanup(cache.Close)
	c := New(api.NewClient(srv.URL, api.WithReadRetries(0)), cache.View())

	_, err := c.GetEvent(context.Background(), "e1")
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load(), "a failed cached read gets exactly one retry in total")
}

func TestListPages_CacheSeparately(t *testing.T) {
	t.Parallel()

	p := newFakePlatform(api.Event{UUID: "e1"})
	c := newTestClient(t, p)
	ctx := context.Background()

	_, err := c.ListEvents(ctx, api.ListOptions{})
	require.NoError(t, err)
	_, err = c.ListEvents(ctx, api.ListOptions{Page: 2})
	require.NoError(t, err)
	_, err = c.ListEvents(ctx, api.ListOptions{Page: 2})
	require.NoError(t, err)

	assert.Equal(t, 2, p.count("GET /api/v1/events"), "page 2 is its own entry, read twice from cache once fetched")
}

func TestCreateEvent_StalesTheList(t *testing.T) {
	t.Parallel()

	p := newFakePlatform(api.Event{UUID: "e1", Title: "GopherCon"})
	c := newTestClient(t, p)
	ctx := context.Background()

	page, err := c.ListEvents(ctx, api.ListOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, page.Count)

	updates, cancel := c.Cache.Watch(Events.List())
	defer cancel()

	_, err = c.CreateEvent(ctx, api.CreateEventRequest{Title: "FOSDEM"})
	require.NoError(t, err)

	// the staled list still serves instantly, refetching behind it
	page, err = c.ListEvents(ctx, api.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Count)

	refreshed := waitForValue(t, updates).(*api.Page[api.Event])
	assert.Equal(t, 2, refreshed.Count)
	assert.Equal(t, 2, p.count("GET /api/v1/events"))
}

func TestUpdateEvent_StalesDetail(t *testing.T) {
	t.Parallel()

	p := newFakePlatform(api.Event{UUID: "e1", Title: "GopherCon"})
	c := newTestClient(t, p)
	ctx := context.Background()

	_, err := c.GetEvent(ctx, "e1")
	require.NoError(t, err)

	updates, cancel := c.Cache.Watch(Events.Detail("e1"))
	defer cancel()

	title := "GopherCon EU"
	_, err = c.UpdateEvent(ctx, "e1", api.PatchEventRequest{Title: &title})
	require.NoError(t, err)

	ev, err := c.GetEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "GopherCon", ev.Title, "stale read keeps the old title")

	refreshed := waitForValue(t, updates).(*api.Event)
	assert.Equal(t, "GopherCon EU", refreshed.Title)
}

func TestDeleteEvent_RemovesDetailOutright(t *testing.T) {
	t.Parallel()

	p := newFakePlatform(api.Event{UUID: "e1", Title: "GopherCon"})
	c := newTestClient(t, p)
	ctx := context.Background()

	_, err := c.GetEvent(ctx, "e1")
	require.NoError(t, err)
	_, err = c.RegistrationsForEvent(ctx, "e1", api.ListOptions{})
	require.NoError(t, err)

	require.NoError(t, c.DeleteEvent(ctx, "e1"))

	_, ok := c.Cache.Peek(Events.Detail("e1"))
	assert.False(t, ok, "a deleted record must not be served even stale")
	_, ok = c.Cache.Peek(Registrations.ForEvent("e1"))
	assert.False(t, ok)

	// the next read goes to the network and surfaces the 404
	_, err = c.GetEvent(ctx, "e1")
	require.Error(t, err)
	assert.True(t, api.IsStatus(err, http.StatusNotFound))
}

func TestMyRoles_MissingSubscriptionFallsBack(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/user/me", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.User{UUID: "u1", AccountType: "organizer"})
	})
	mux.HandleFunc("/api/v1/user/subscription", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "no subscription", "code": "not_found"})
	})
	c := newTestClient(t, mux)

	flags, err := c.MyRoles(context.Background())
	require.NoError(t, err)
	assert.True(t, flags.IsOrganizer)
	assert.False(t, flags.IsAttendee)
}

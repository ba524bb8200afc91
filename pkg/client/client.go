// Package client is the cached view of the platform API. Reads go
// through the query cache; mutations call the API directly and then
// invalidate per the contract: creates stale the domain list, updates
// stale list+detail, deletes stale the list and hard-remove the
// detail key.
package client

import (
	"context"
	"strconv"

	"github.com/eventfold/eventfold/pkg/api"
	"github.com/eventfold/eventfold/pkg/querycache"
)

var (
	Events        = querycache.Domain("events")
	Registrations = querycache.Domain("registrations")
	Certificates  = querycache.Domain("certificates")
	Organizations = querycache.Domain("organizations")
	Contacts      = querycache.Domain("contacts")
	User          = querycache.Domain("user")
)

type Client struct {
	API   *api.Client
	Cache querycache.View
}

func New(apiClient *api.Client, cache querycache.View) *Client {
	return &Client{API: apiClient, Cache: cache}
}

// listKey extends a list key with the page number so page 2 caches
// separately from page 1 while staying under the list prefix for
// invalidation.
func listKey(base querycache.Key, opts api.ListOptions) querycache.Key {
	if opts.Page > 1 {
		return base.Child(strconv.Itoa(opts.Page))
	}
	return base
}

func cached[T any](ctx context.Context, c querycache.View, key querycache.Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	v, err := c.Get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

package api

import (
	"context"
	"net/http"
	"slices"
)

func (m *Manifest) HasRoute(route string) bool {
	if m == nil {
		return false
	}
	return slices.Contains(m.Routes, route)
}

func (m *Manifest) HasFeature(key string) bool {
	if m == nil {
		return false
	}
	return m.Features[key]
}

// GetManifest returns the route/feature manifest for the authenticated
// user. Unauthenticated calls fail with a 401 Error.
func (c *Client) GetManifest(ctx context.Context) (*Manifest, error) {
	var m Manifest
	if err := c.do(ctx, http.MethodGet, "/api/v1/user/manifest", nil, nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

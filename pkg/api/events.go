package api

import (
	"context"
	"net/http"
	"time"
)

type CreateEventRequest struct {
	OrganizationUUID string     `json:"organization_uuid"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Location         string     `json:"location,omitempty"`
	StartsAt         *time.Time `json:"starts_at,omitempty"`
	EndsAt           *time.Time `json:"ends_at,omitempty"`
	Capacity         int        `json:"capacity,omitempty"`
	IsPublic         bool       `json:"is_public"`
}

type PatchEventRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Capacity    *int       `json:"capacity,omitempty"`
	IsPublic    *bool      `json:"is_public,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

func (c *Client) ListEvents(ctx context.Context, opts ListOptions) (*Page[Event], error) {
	var page Page[Event]
	if err := c.do(ctx, http.MethodGet, "/api/v1/events", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) ListPublicEvents(ctx context.Context, opts ListOptions) (*Page[Event], error) {
	var page Page[Event]
	if err := c.do(ctx, http.MethodGet, "/api/v1/events/public", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetEvent(ctx context.Context, uuid string) (*Event, error) {
	var ev Event
	if err := c.do(ctx, http.MethodGet, "/api/v1/events/"+uuid, nil, nil, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	var ev Event
	if err := c.do(ctx, http.MethodPost, "/api/v1/events", nil, req, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (c *Client) PatchEvent(ctx context.Context, uuid string, req PatchEventRequest) (*Event, error) {
	var ev Event
	if err := c.do(ctx, http.MethodPatch, "/api/v1/events/"+uuid, nil, req, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (c *Client) DeleteEvent(ctx context.Context, uuid string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/events/"+uuid, nil, nil, nil)
}

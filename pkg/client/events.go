package client

import (
	"context"

	"github.com/eventfold/eventfold/pkg/api"
)

func (c *Client) ListEvents(ctx context.Context, opts api.ListOptions) (*api.Page[api.Event], error) {
	return cached(ctx, c.Cache, listKey(Events.List(), opts), func(ctx context.Context) (*api.Page[api.Event], error) {
		return c.API.ListEvents(ctx, opts)
	})
}

func (c *Client) ListPublicEvents(ctx context.Context, opts api.ListOptions) (*api.Page[api.Event], error) {
	return cached(ctx, c.Cache, listKey(Events.Public(), opts), func(ctx context.Context) (*api.Page[api.Event], error) {
		return c.API.ListPublicEvents(ctx, opts)
	})
}

func (c *Client) GetEvent(ctx context.Context, uuid string) (*api.Event, error) {
	return cached(ctx, c.Cache, Events.Detail(uuid), func(ctx context.Context) (*api.Event, error) {
		return c.API.GetEvent(ctx, uuid)
	})
}

func (c *Client) CreateEvent(ctx context.Context, req api.CreateEventRequest) (*api.Event, error) {
	ev, err := c.API.CreateEvent(ctx, req)
	if err != nil {
		return nil, err
	}
	c.Cache.Invalidate(Events.List())
	c.Cache.Invalidate(Events.Public())
	return ev, nil
}

func (c *Client) UpdateEvent(ctx context.Context, uuid string, req api.PatchEventRequest) (*api.Event, error) {
	ev, err := c.API.PatchEvent(ctx, uuid, req)
	if err != nil {
		return nil, err
	}
	c.Cache.Invalidate(Events.List())
	c.Cache.Invalidate(Events.Public())
	c.Cache.Invalidate(Events.Detail(uuid))
	return ev, nil
}

func (c *Client) DeleteEvent(ctx context.Context, uuid string) error {
	if err := c.API.DeleteEvent(ctx, uuid); err != nil {
		return err
	}
	c.Cache.Invalidate(Events.List())
	c.Cache.Invalidate(Events.Public())
	c.Cache.Remove(Events.Detail(uuid))
	c.Cache.Remove(Registrations.ForEvent(uuid))
	c.Cache.Remove(Certificates.ForEvent(uuid))
	return nil
}

func (c *Client) RegistrationsForEvent(ctx context.Context, eventUUID string, opts api.ListOptions) (*api.Page[api.Registration], error) {
	return cached(ctx, c.Cache, listKey(Registrations.ForEvent(eventUUID), opts), func(ctx context.Context) (*api.Page[api.Registration], error) {
		return c.API.RegistrationsForEvent(ctx, eventUUID, opts)
	})
}

func (c *Client) ListRegistrations(ctx context.Context, opts api.ListOptions) (*api.Page[api.Registration], error) {
	return cached(ctx, c.Cache, listKey(Registrations.List(), opts), func(ctx context.Context) (*api.Page[api.Registration], error) {
		return c.API.ListRegistrations(ctx, opts)
	})
}

func (c *Client) CancelRegistration(ctx context.Context, uuid string) error {
	if err := c.API.CancelRegistration(ctx, uuid); err != nil {
		return err
	}
	c.Cache.Invalidate(Registrations.All())
	return nil
}

func (c *Client) ListCertificates(ctx context.Context, opts api.ListOptions) (*api.Page[api.Certificate], error) {
	return cached(ctx, c.Cache, listKey(Certificates.List(), opts), func(ctx context.Context) (*api.Page[api.Certificate], error) {
		return c.API.ListCertificates(ctx, opts)
	})
}

func (c *Client) CertificatesForEvent(ctx context.Context, eventUUID string, opts api.ListOptions) (*api.Page[api.Certificate], error) {
	return cached(ctx, c.Cache, listKey(Certificates.ForEvent(eventUUID), opts), func(ctx context.Context) (*api.Page[api.Certificate], error) {
		return c.API.CertificatesForEvent(ctx, eventUUID, opts)
	})
}

package api

import (
	"context"
	"net/http"
)

func (c *Client) ListRegistrations(ctx context.Context, opts ListOptions) (*Page[Registration], error) {
	var page Page[Registration]
	if err := c.do(ctx, http.MethodGet, "/api/v1/registrations", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) RegistrationsForEvent(ctx context.Context, eventUUID string, opts ListOptions) (*Page[Registration], error) {
	var page Page[Registration]
	if err := c.do(ctx, http.MethodGet, "/api/v1/events/"+eventUUID+"/registrations", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CancelRegistration(ctx context.Context, uuid string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/registrations/"+uuid, nil, nil, nil)
}

func (c *Client) ListCertificates(ctx context.Context, opts ListOptions) (*Page[Certificate], error) {
	var page Page[Certificate]
	if err := c.do(ctx, http.MethodGet, "/api/v1/certificates", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CertificatesForEvent(ctx context.Context, eventUUID string, opts ListOptions) (*Page[Certificate], error) {
	var page Page[Certificate]
	if err := c.do(ctx, http.MethodGet, "/api/v1/events/"+eventUUID+"/certificates", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

package api

import (
	"context"
	"net/http"
)

type CreateContactListRequest struct {
	OrganizationUUID string `json:"organization_uuid"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
}

type PatchContactListRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (c *Client) ListContactLists(ctx context.Context, opts ListOptions) (*Page[ContactList], error) {
	var page Page[ContactList]
	if err := c.do(ctx, http.MethodGet, "/api/v1/contact-lists", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetContactList(ctx context.Context, uuid string) (*ContactList, error) {
	var cl ContactList
	if err := c.do(ctx, http.MethodGet, "/api/v1/contact-lists/"+uuid, nil, nil, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

func (c *Client) CreateContactList(ctx context.Context, req CreateContactListRequest) (*ContactList, error) {
	var cl ContactList
	if err := c.do(ctx, http.MethodPost, "/api/v1/contact-lists", nil, req, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

func (c *Client) PatchContactList(ctx context.Context, uuid string, req PatchContactListRequest) (*ContactList, error) {
	var cl ContactList
	if err := c.do(ctx, http.MethodPatch, "/api/v1/contact-lists/"+uuid, nil, req, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

func (c *Client) DeleteContactList(ctx context.Context, uuid string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/contact-lists/"+uuid, nil, nil, nil)
}

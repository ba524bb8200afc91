package client

import (
	"context"

	"github.com/eventfold/eventfold/pkg/api"
)

func (c *Client) ListContactLists(ctx context.Context, opts api.ListOptions) (*api.Page[api.ContactList], error) {
	return cached(ctx, c.Cache, listKey(Contacts.List(), opts), func(ctx context.Context) (*api.Page[api.ContactList], error) {
		return c.API.ListContactLists(ctx, opts)
	})
}

func (c *Client) GetContactList(ctx context.Context, uuid string) (*api.ContactList, error) {
	return cached(ctx, c.Cache, Contacts.Detail(uuid), func(ctx context.Context) (*api.ContactList, error) {
		return c.API.GetContactList(ctx, uuid)
	})
}

func (c *Client) CreateContactList(ctx context.Context, req api.CreateContactListRequest) (*api.ContactList, error) {
	cl, err := c.API.CreateContactList(ctx, req)
	if err != nil {
		return nil, err
	}
	c.Cache.Invalidate(Contacts.List())
	return cl, nil
}

func (c *Client) UpdateContactList(ctx context.Context, uuid string, req api.PatchContactListRequest) (*api.ContactList, error) {
	cl, err := c.API.PatchContactList(ctx, uuid, req)
	if err != nil {
		return nil, err
	}
	c.Cache.Invalidate(Contacts.List())
	c.Cache.Invalidate(Contacts.Detail(uuid))
	return cl, nil
}

func (c *Client) DeleteContactList(ctx context.Context, uuid string) error {
	if err := c.API.DeleteContactList(ctx, uuid); err != nil {
		return err
	}
	c.Cache.Invalidate(Contacts.List())
	c.Cache.Remove(Contacts.Detail(uuid))
	return nil
}

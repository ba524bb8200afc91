package client

import (
	"context"

	"github.com/eventfold/eventfold/pkg/api"
	"github.com/eventfold/eventfold/pkg/roles"
)

func (c *Client) ListOrganizations(ctx context.Context, opts api.ListOptions) (*api.Page[api.Organization], error) {
	return cached(ctx, c.Cache, listKey(Organizations.List(), opts), func(ctx context.Context) (*api.Page[api.Organization], error) {
		return c.API.ListOrganizations(ctx, opts)
	})
}

func (c *Client) GetOrganization(ctx context.Context, uuid string) (*api.Organization, error) {
	return cached(ctx, c.Cache, Organizations.Detail(uuid), func(ctx context.Context) (*api.Organization, error) {
		return c.API.GetOrganization(ctx, uuid)
	})
}

func (c *Client) OrganizationMembers(ctx context.Context, uuid string, opts api.ListOptions) (*api.Page[api.OrganizationMember], error) {
	key := listKey(Organizations.Detail(uuid).Child("members"), opts)
	return cached(ctx, c.Cache, key, func(ctx context.Context) (*api.Page[api.OrganizationMember], error) {
		return c.API.ListOrganizationMembers(ctx, uuid, opts)
	})
}

func (c *Client) CreateOrganization(ctx context.Context, req api.CreateOrganizationRequest) (*api.Organization, error) {
	org, err := c.API.CreateOrganization(ctx, req)
	if err != nil {
		return nil, err
	}
	c.Cache.Invalidate(Organizations.List())
	return org, nil
}

func (c *Client) UpdateOrganization(ctx context.Context, uuid string, req api.PatchOrganizationRequest) (*api.Organization, error) {
	org, err := c.API.PatchOrganization(ctx, uuid, req)
	if err != nil {
		return nil, err
	}
	c.Cache.Invalidate(Organizations.List())
	c.Cache.Invalidate(Organizations.Detail(uuid))
	return org, nil
}

func (c *Client) DeleteOrganization(ctx context.Context, uuid string) error {
	if err := c.API.DeleteOrganization(ctx, uuid); err != nil {
		return err
	}
	c.Cache.Invalidate(Organizations.List())
	c.Cache.Remove(Organizations.Detail(uuid))
	return nil
}

func (c *Client) Me(ctx context.Context) (*api.User, error) {
	return cached(ctx, c.Cache, User.Named("me"), func(ctx context.Context) (*api.User, error) {
		return c.API.Me(ctx)
	})
}

func (c *Client) MySubscription(ctx context.Context) (*api.Subscription, error) {
	return cached(ctx, c.Cache, User.Named("subscription"), func(ctx context.Context) (*api.Subscription, error) {
		return c.API.MySubscription(ctx)
	})
}

// MyRoles recomputes role flags from the cached user and subscription.
// A missing subscription (404) is not an error: attendees without a
// billing record simply fall back to account_type.
func (c *Client) MyRoles(ctx context.Context) (roles.RoleFlags, error) {
	user, err := c.Me(ctx)
	if err != nil {
		return roles.RoleFlags{}, err
	}
	sub, err := c.MySubscription(ctx)
	if err != nil {
		if !api.IsStatus(err, 404) {
			return roles.RoleFlags{}, err
		}
		sub = nil
	}
	return roles.Resolve(user, sub), nil
}

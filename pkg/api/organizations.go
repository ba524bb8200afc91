package api

import (
	"context"
	"net/http"
)

type CreateOrganizationRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}

type PatchOrganizationRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

func (c *Client) ListOrganizations(ctx context.Context, opts ListOptions) (*Page[Organization], error) {
	var page Page[Organization]
	if err := c.do(ctx, http.MethodGet, "/api/v1/organizations", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetOrganization(ctx context.Context, uuid string) (*Organization, error) {
	var org Organization
	if err := c.do(ctx, http.MethodGet, "/api/v1/organizations/"+uuid, nil, nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (c *Client) ListOrganizationMembers(ctx context.Context, uuid string, opts ListOptions) (*Page[OrganizationMember], error) {
	var page Page[OrganizationMember]
	if err := c.do(ctx, http.MethodGet, "/api/v1/organizations/"+uuid+"/members", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*Organization, error) {
	var org Organization
	if err := c.do(ctx, http.MethodPost, "/api/v1/organizations", nil, req, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (c *Client) PatchOrganization(ctx context.Context, uuid string, req PatchOrganizationRequest) (*Organization, error) {
	var org Organization
	if err := c.do(ctx, http.MethodPatch, "/api/v1/organizations/"+uuid, nil, req, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (c *Client) DeleteOrganization(ctx context.Context, uuid string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/organizations/"+uuid, nil, nil, nil)
}

package webex

import (
	"context"
	"net/url"
)

// Organizations are sets of people. An organization may manage other
// organizations or be managed itself.

type ListOrganizationsOptions struct {
	DisplayName string
	ID          string
}

func (c *client) ListOrganizations(ctx context.Context, opts ListOrganizationsOptions) ([]*Organization, error) {
	query := url.Values{}
	if opts.DisplayName != "" {
		query.Set("displayName", opts.DisplayName)
	}
	if opts.ID != "" {
		query.Set("id", opts.ID)
	}

	resp := &organizationsResponse{}
	err := c.get(ctx, "/organizations", query, resp)
	if err != nil {
		return nil, err
	}

	return resp.Items, nil
}

package webex

import (
	"context"
	"net/url"
	"strconv"
)

// People are registered users of Webex.

type ListPeopleOptions struct {
	// At least one of Email, DisplayName, ID or Roles should be set.
	Email       string
	DisplayName string
	ID          string
	OrgID       string
	Roles       string
	LocationID  string

	// Max is the page size, defaulting to 100.
	Max int
}

func (c *client) ListPeople(ctx context.Context, opts ListPeopleOptions) ([]*Person, error) {
	if opts.Max == 0 {
		opts.Max = 100
	}

	query := url.Values{}
	query.Set("max", strconv.Itoa(opts.Max))
	if opts.Email != "" {
		query.Set("email", opts.Email)
	}
	if opts.DisplayName != "" {
		query.Set("displayName", opts.DisplayName)
	}
	if opts.ID != "" {
		query.Set("id", opts.ID)
	}
	if opts.OrgID != "" {
		query.Set("orgId", opts.OrgID)
	}
	if opts.Roles != "" {
		query.Set("roles", opts.Roles)
	}
	if opts.LocationID != "" {
		query.Set("locationId", opts.LocationID)
	}

	resp := &peopleResponse{}
	err := c.get(ctx, "/people", query, resp)
	if err != nil {
		return nil, err
	}

	return resp.Items, nil
}

// GetMe returns the person tied to the configured access token.
func (c *client) GetMe(ctx context.Context) (*Person, error) {
	person := &Person{}
	err := c.get(ctx, "/people/me", nil, person)
	if err != nil {
		return nil, err
	}
	return person, nil
}

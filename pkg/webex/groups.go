package webex

import (
	"context"
	"net/url"
	"strconv"
)

// Groups contain a collection of members and are used to assign templates and
// settings to the set of members contained in a group.

type ListGroupsOptions struct {
	// Count is the page size, defaulting to 100.
	Count int
}

func (c *client) ListGroups(ctx context.Context, opts ListGroupsOptions) ([]*Group, error) {
	if opts.Count == 0 {
		opts.Count = 100
	}

	query := url.Values{}
	query.Set("count", strconv.Itoa(opts.Count))

	resp := &groupsResponse{}
	err := c.get(ctx, "/groups", query, resp)
	if err != nil {
		return nil, err
	}

	return resp.Items, nil
}

package webex

import (
	"context"
	"net/url"
	"strconv"
)

// Teams are groups of people with a set of rooms that are visible to all
// members of that team.

type ListTeamsOptions struct {
	// Name keeps only teams with this exact name. Applied client-side.
	Name string

	// Max is the page size, defaulting to 100.
	Max int
}

func (c *client) ListTeams(ctx context.Context, opts ListTeamsOptions) ([]*Team, error) {
	if opts.Max == 0 {
		opts.Max = 100
	}

	query := url.Values{}
	query.Set("max", strconv.Itoa(opts.Max))

	resp := &teamsResponse{}
	err := c.get(ctx, "/teams", query, resp)
	if err != nil {
		return nil, err
	}

	return filterExact(resp.Items, func(t *Team) string { return t.Name }, opts.Name), nil
}

func (c *client) CreateTeam(ctx context.Context, name string) (*Team, error) {
	input := struct {
		Name string `json:"name"`
	}{
		Name: name,
	}

	team := &Team{}
	err := c.post(ctx, "/teams", input, team)
	if err != nil {
		return nil, err
	}
	return team, nil
}

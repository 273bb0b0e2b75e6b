package webex

import (
	"context"
	"net/url"
)

func (c *client) ListTeamMemberships(ctx context.Context, teamID string) ([]*TeamMembership, error) {
	query := url.Values{}
	query.Set("teamId", teamID)

	resp := &teamMembershipsResponse{}
	err := c.get(ctx, "/team/memberships", query, resp)
	if err != nil {
		return nil, err
	}

	return resp.Items, nil
}

type AddTeamMembershipInput struct {
	TeamID      string `json:"teamId"`
	PersonID    string `json:"personId,omitempty"`
	PersonEmail string `json:"personEmail,omitempty"`
	IsModerator bool   `json:"isModerator,omitempty"`
}

func (c *client) AddTeamMembership(ctx context.Context, input AddTeamMembershipInput) (*TeamMembership, error) {
	membership := &TeamMembership{}
	err := c.post(ctx, "/team/memberships", input, membership)
	if err != nil {
		return nil, err
	}
	return membership, nil
}

func (c *client) DeleteTeamMembership(ctx context.Context, membershipID string) error {
	return c.delete(ctx, "/team/memberships/"+membershipID)
}

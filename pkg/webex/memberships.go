package webex

import (
	"context"
	"net/url"
)

// Memberships represent a person's relationship to a room. Direct rooms have
// exactly two members.

func (c *client) ListRoomMemberships(ctx context.Context, roomID string) ([]*Membership, error) {
	query := url.Values{}
	query.Set("roomId", roomID)

	resp := &membershipsResponse{}
	err := c.get(ctx, "/memberships", query, resp)
	if err != nil {
		return nil, err
	}

	return resp.Items, nil
}

type AddRoomMembershipInput struct {
	RoomID      string `json:"roomId"`
	PersonID    string `json:"personId,omitempty"`
	PersonEmail string `json:"personEmail,omitempty"`
	IsModerator bool   `json:"isModerator,omitempty"`
}

func (c *client) AddRoomMembership(ctx context.Context, input AddRoomMembershipInput) (*Membership, error) {
	membership := &Membership{}
	err := c.post(ctx, "/memberships", input, membership)
	if err != nil {
		return nil, err
	}
	return membership, nil
}

func (c *client) DeleteRoomMembership(ctx context.Context, membershipID string) error {
	return c.delete(ctx, "/memberships/"+membershipID)
}

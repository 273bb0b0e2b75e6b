package webex

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Rooms are virtual meeting places where people post messages and collaborate.

type ListRoomsOptions struct {
	// TeamID limits the listing to rooms of a single team.
	TeamID string

	// Type is either "direct" or "group".
	Type string

	// Title keeps only rooms with this exact title. Applied client-side.
	Title string

	// Max is the page size, defaulting to 100.
	Max int
}

func (c *client) ListRooms(ctx context.Context, opts ListRoomsOptions) ([]*Room, error) {
	if opts.Max == 0 {
		opts.Max = 100
	}

	query := url.Values{}
	query.Set("max", strconv.Itoa(opts.Max))
	if opts.TeamID != "" {
		query.Set("teamId", opts.TeamID)
	}
	if opts.Type != "" {
		query.Set("type", opts.Type)
	}

	resp := &roomsResponse{}
	err := c.get(ctx, "/rooms", query, resp)
	if err != nil {
		return nil, err
	}

	return filterExact(resp.Items, func(r *Room) string { return r.Title }, opts.Title), nil
}

func (c *client) GetRoom(ctx context.Context, roomID string) (*Room, error) {
	room := &Room{}
	err := c.get(ctx, "/rooms/"+roomID, nil, room)
	if err != nil {
		return nil, err
	}
	return room, nil
}

type CreateRoomInput struct {
	Title              string `json:"title"`
	TeamID             string `json:"teamId,omitempty"`
	Description        string `json:"description,omitempty"`
	IsLocked           bool   `json:"isLocked,omitempty"`
	IsPublic           bool   `json:"isPublic,omitempty"`
	IsAnnouncementOnly bool   `json:"isAnnouncementOnly,omitempty"`
}

func (c *client) CreateRoom(ctx context.Context, input CreateRoomInput) (*Room, error) {
	room := &Room{}
	err := c.post(ctx, "/rooms", input, room)
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (c *client) DeleteRoom(ctx context.Context, roomID string) error {
	return c.delete(ctx, "/rooms/"+roomID)
}

// DeleteRoomByTitle looks up rooms by exact title and deletes the first match.
// Titles are not unique on the remote, so multiple matches are logged and only
// the first one is removed.
func (c *client) DeleteRoomByTitle(ctx context.Context, title string) error {
	rooms, err := c.ListRooms(ctx, ListRoomsOptions{Title: title})
	if err != nil {
		return err
	}

	if len(rooms) == 0 {
		return fmt.Errorf("no rooms with title %q", title)
	}

	if len(rooms) > 1 {
		log.Warnf("more than one room found with title %q, deleting the first one", title)
	}

	if rooms[0].ID == "" {
		return fmt.Errorf("room with title %q has no ID", title)
	}

	return c.DeleteRoom(ctx, rooms[0].ID)
}

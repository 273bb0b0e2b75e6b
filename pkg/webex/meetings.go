package webex

import (
	"context"
	"net/url"
	"strconv"
)

// Meetings are virtual conferences where users collaborate in real time.

type ListMeetingsOptions struct {
	MeetingNumber string
	WebLink       string
	RoomID        string
	MeetingType   string
	State         string

	// Max is the page size, defaulting to 10.
	Max int
}

func (c *client) ListMeetings(ctx context.Context, opts ListMeetingsOptions) ([]*Meeting, error) {
	if opts.Max == 0 {
		opts.Max = 10
	}

	query := url.Values{}
	query.Set("max", strconv.Itoa(opts.Max))
	if opts.MeetingNumber != "" {
		query.Set("meetingNumber", opts.MeetingNumber)
	}
	if opts.WebLink != "" {
		query.Set("webLink", opts.WebLink)
	}
	if opts.RoomID != "" {
		query.Set("roomId", opts.RoomID)
	}
	if opts.MeetingType != "" {
		query.Set("meetingType", opts.MeetingType)
	}
	if opts.State != "" {
		query.Set("state", opts.State)
	}

	resp := &meetingsResponse{}
	err := c.get(ctx, "/meetings", query, resp)
	if err != nil {
		return nil, err
	}

	return resp.Items, nil
}

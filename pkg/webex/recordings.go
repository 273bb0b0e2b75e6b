package webex

import (
	"context"
	"net/url"
	"strconv"
)

// Recordings are meeting content captured in a meeting or files uploaded via
// the upload page of a Webex site.

type ListRecordingsOptions struct {
	MeetingID string

	// Max is the page size, defaulting to 10.
	Max int
}

func (c *client) ListRecordings(ctx context.Context, opts ListRecordingsOptions) ([]*Recording, error) {
	if opts.Max == 0 {
		opts.Max = 10
	}

	query := url.Values{}
	query.Set("max", strconv.Itoa(opts.Max))
	if opts.MeetingID != "" {
		query.Set("meetingId", opts.MeetingID)
	}

	resp := &recordingsResponse{}
	err := c.get(ctx, "/recordings", query, resp)
	if err != nil {
		return nil, err
	}

	return resp.Items, nil
}

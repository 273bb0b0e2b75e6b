package webex

import (
	"context"
	"net/url"
	"strconv"
)

// Messages are how people communicate in a room. Each message is displayed on
// its own line along with a timestamp and sender information.

type ListMessagesOptions struct {
	RoomID   string
	ParentID string

	// Max is the page size, defaulting to 50.
	Max int
}

func (c *client) ListMessages(ctx context.Context, opts ListMessagesOptions) ([]*Message, error) {
	if opts.Max == 0 {
		opts.Max = 50
	}

	query := url.Values{}
	query.Set("roomId", opts.RoomID)
	query.Set("max", strconv.Itoa(opts.Max))
	if opts.ParentID != "" {
		query.Set("parentId", opts.ParentID)
	}

	resp := &messagesResponse{}
	err := c.get(ctx, "/messages", query, resp)
	if err != nil {
		return nil, err
	}

	return resp.Items, nil
}

type ListDirectMessagesOptions struct {
	ParentID    string
	PersonID    string
	PersonEmail string
}

func (c *client) ListDirectMessages(ctx context.Context, opts ListDirectMessagesOptions) ([]*Message, error) {
	query := url.Values{}
	if opts.ParentID != "" {
		query.Set("parentId", opts.ParentID)
	}
	if opts.PersonID != "" {
		query.Set("personId", opts.PersonID)
	}
	if opts.PersonEmail != "" {
		query.Set("personEmail", opts.PersonEmail)
	}

	resp := &messagesResponse{}
	err := c.get(ctx, "/messages/direct", query, resp)
	if err != nil {
		return nil, err
	}

	return resp.Items, nil
}

// CreateMessageInput posts a plain text or rich text message, optionally with
// file attachments, to a room. Set RoomID for a room message, or ToPersonID or
// ToPersonEmail for a direct message.
type CreateMessageInput struct {
	RoomID        string       `json:"roomId,omitempty"`
	ParentID      string       `json:"parentId,omitempty"`
	ToPersonID    string       `json:"toPersonId,omitempty"`
	ToPersonEmail string       `json:"toPersonEmail,omitempty"`
	Text          string       `json:"text,omitempty"`
	Markdown      string       `json:"markdown,omitempty"`
	Files         []string     `json:"files,omitempty"`
	Attachments   []Attachment `json:"attachments,omitempty"`
}

func (c *client) CreateMessage(ctx context.Context, input CreateMessageInput) (*Message, error) {
	message := &Message{}
	err := c.post(ctx, "/messages", input, message)
	if err != nil {
		return nil, err
	}
	return message, nil
}

package webex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the production endpoint of the Webex REST API.
	DefaultBaseURL = "https://webexapis.com"

	// DefaultAPIVersion is the version segment appended to the base URL.
	DefaultAPIVersion = "v1"

	defaultTimeout = 10 * time.Second
)

// Client wraps the Webex REST API, one method per remote action.
type Client interface {
	AddRoomMembership(ctx context.Context, input AddRoomMembershipInput) (*Membership, error)
	AddTeamMembership(ctx context.Context, input AddTeamMembershipInput) (*TeamMembership, error)
	CreateMessage(ctx context.Context, input CreateMessageInput) (*Message, error)
	CreateRoom(ctx context.Context, input CreateRoomInput) (*Room, error)
	CreateTeam(ctx context.Context, name string) (*Team, error)
	DeleteRoom(ctx context.Context, roomID string) error
	DeleteRoomByTitle(ctx context.Context, title string) error
	DeleteRoomMembership(ctx context.Context, membershipID string) error
	DeleteTeamMembership(ctx context.Context, membershipID string) error
	GetMe(ctx context.Context) (*Person, error)
	GetRoom(ctx context.Context, roomID string) (*Room, error)
	ListDirectMessages(ctx context.Context, opts ListDirectMessagesOptions) ([]*Message, error)
	ListGroups(ctx context.Context, opts ListGroupsOptions) ([]*Group, error)
	ListMeetings(ctx context.Context, opts ListMeetingsOptions) ([]*Meeting, error)
	ListMessages(ctx context.Context, opts ListMessagesOptions) ([]*Message, error)
	ListOrganizations(ctx context.Context, opts ListOrganizationsOptions) ([]*Organization, error)
	ListPeople(ctx context.Context, opts ListPeopleOptions) ([]*Person, error)
	ListRecordings(ctx context.Context, opts ListRecordingsOptions) ([]*Recording, error)
	ListRoomMemberships(ctx context.Context, roomID string) ([]*Membership, error)
	ListRooms(ctx context.Context, opts ListRoomsOptions) ([]*Room, error)
	ListTeamMemberships(ctx context.Context, teamID string) ([]*TeamMembership, error)
	ListTeams(ctx context.Context, opts ListTeamsOptions) ([]*Team, error)
}

type client struct {
	baseURL string
	token   string
	client  *http.Client
}

// New creates a Webex API client. Empty baseURL and apiVersion fall back to the
// production defaults. A nil httpClient gets a default client with a fixed
// 10 second timeout.
func New(baseURL, apiVersion, token string, httpClient *http.Client) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
		}
	}
	return &client{
		baseURL: baseURL + "/" + apiVersion,
		token:   token,
		client:  httpClient,
	}
}

// do performs a single round trip against the API. A non-2xx response is
// returned as an *Error carrying the numeric status code and the raw body. An
// empty response body leaves out untouched, covering 204 and empty 200
// responses.
func (c *client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response from %s %s: %w", method, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(raw),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response from %s %s: %w", method, path, err)
	}

	return nil
}

func (c *client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

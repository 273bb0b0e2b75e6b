package provision_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/collabops/webex-provisioner/pkg/config"
	"github.com/collabops/webex-provisioner/pkg/logger"
	"github.com/collabops/webex-provisioner/pkg/provision"
	"github.com/collabops/webex-provisioner/pkg/webex"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// fakeWebex plays the remote service for a full provisioning run, recording
// every call so tests can assert on exactly which ones were made.
type fakeWebex struct {
	t *testing.T

	teams []*webex.Team
	rooms []*webex.Room

	failTeamList     bool
	failRoomCreate   bool
	membershipStatus int

	createTeamCalls int
	createRoomCalls int
	roomListCalls   int
	teamMembers     []string
	roomMembers     map[string][]string
	messages        map[string]string
}

func newFakeWebex(t *testing.T) *fakeWebex {
	return &fakeWebex{
		t:           t,
		roomMembers: map[string][]string{},
		messages:    map[string]string{},
	}
}

func (f *fakeWebex) client() webex.Client {
	httpClient := &http.Client{
		Transport: roundTripFunc(f.roundTrip),
	}
	return webex.New("https://api.test", "v1", "some-token", httpClient)
}

func (f *fakeWebex) roundTrip(req *http.Request) (*http.Response, error) {
	switch req.Method + " " + req.URL.Path {
	case "GET /v1/teams":
		if f.failTeamList {
			return nil, errors.New("connection refused")
		}
		return jsonResponse(f.t, http.StatusOK, map[string]interface{}{"items": f.teams}), nil

	case "POST /v1/teams":
		f.createTeamCalls++
		input := struct {
			Name string `json:"name"`
		}{}
		decodeBody(f.t, req, &input)
		team := &webex.Team{ID: fmt.Sprintf("team-%d", len(f.teams)+1), Name: input.Name}
		f.teams = append(f.teams, team)
		return jsonResponse(f.t, http.StatusOK, team), nil

	case "GET /v1/rooms":
		f.roomListCalls++
		assert.NotEmpty(f.t, req.URL.Query().Get("teamId"))
		return jsonResponse(f.t, http.StatusOK, map[string]interface{}{"items": f.rooms}), nil

	case "POST /v1/rooms":
		if f.failRoomCreate {
			return jsonResponse(f.t, http.StatusInternalServerError, map[string]string{"message": "room error"}), nil
		}
		f.createRoomCalls++
		input := webex.CreateRoomInput{}
		decodeBody(f.t, req, &input)
		room := &webex.Room{ID: fmt.Sprintf("room-%d", len(f.rooms)+1), Title: input.Title, TeamID: input.TeamID}
		f.rooms = append(f.rooms, room)
		return jsonResponse(f.t, http.StatusOK, room), nil

	case "POST /v1/team/memberships":
		if f.membershipStatus != 0 {
			return jsonResponse(f.t, f.membershipStatus, map[string]string{"message": "membership rejected"}), nil
		}
		input := webex.AddTeamMembershipInput{}
		decodeBody(f.t, req, &input)
		f.teamMembers = append(f.teamMembers, input.PersonEmail)
		membership := &webex.TeamMembership{ID: "team-membership-1", TeamID: input.TeamID, PersonEmail: input.PersonEmail}
		return jsonResponse(f.t, http.StatusOK, membership), nil

	case "POST /v1/memberships":
		if f.membershipStatus != 0 {
			return jsonResponse(f.t, f.membershipStatus, map[string]string{"message": "membership rejected"}), nil
		}
		input := webex.AddRoomMembershipInput{}
		decodeBody(f.t, req, &input)
		f.roomMembers[input.RoomID] = append(f.roomMembers[input.RoomID], input.PersonEmail)
		membership := &webex.Membership{ID: "membership-1", RoomID: input.RoomID, PersonEmail: input.PersonEmail}
		return jsonResponse(f.t, http.StatusOK, membership), nil

	case "POST /v1/messages":
		input := webex.CreateMessageInput{}
		decodeBody(f.t, req, &input)
		f.messages[input.RoomID] = input.Text
		message := &webex.Message{ID: "message-1", RoomID: input.RoomID, Text: input.Text}
		return jsonResponse(f.t, http.StatusOK, message), nil
	}

	f.t.Fatalf("unexpected request: %s %s", req.Method, req.URL.Path)
	return nil, nil
}

func jsonResponse(t *testing.T, statusCode int, body interface{}) *http.Response {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	return &http.Response{
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		Body:       io.NopCloser(bytes.NewReader(payload)),
		Header:     make(http.Header),
	}
}

func decodeBody(t *testing.T, req *http.Request, out interface{}) {
	err := json.NewDecoder(req.Body).Decode(out)
	require.NoError(t, err)
}

func newTestLogger(t *testing.T) (logger.Logger, *test.Hook) {
	lg, err := logger.GetLogger("text", "debug")
	require.NoError(t, err)

	internalLogger := lg.GetInternalLogger()
	internalLogger.Out = io.Discard

	return lg, test.NewLocal(internalLogger)
}

func errorEntries(hook *test.Hook) []*logrus.Entry {
	entries := []*logrus.Entry{}
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.ErrorLevel {
			entries = append(entries, entry)
		}
	}
	return entries
}

func testPlans() []config.RoomPlan {
	return []config.RoomPlan{
		{Title: "Dev Room", Members: []string{"alice@example.com", "bob@example.com", "charlie@example.com"}},
		{Title: "QA Room", Members: []string{"diana@example.com", "eve@example.com"}},
	}
}

func TestProvisioner_Run_CreatesEverything(t *testing.T) {
	fake := newFakeWebex(t)
	lg, hook := newTestLogger(t)

	err := provision.New(fake.client(), lg).Run(context.Background(), "Project Alpha", testPlans())
	require.NoError(t, err)

	assert.Equal(t, 1, fake.createTeamCalls)
	assert.Equal(t, 2, fake.createRoomCalls)

	assert.Equal(t, []string{
		"alice@example.com",
		"bob@example.com",
		"charlie@example.com",
		"diana@example.com",
		"eve@example.com",
	}, fake.teamMembers)

	assert.Equal(t, []string{"alice@example.com", "bob@example.com", "charlie@example.com"}, fake.roomMembers["room-1"])
	assert.Equal(t, []string{"diana@example.com", "eve@example.com"}, fake.roomMembers["room-2"])

	assert.Equal(t, "👋 Welcome to the *Dev Room*!", fake.messages["room-1"])
	assert.Equal(t, "👋 Welcome to the *QA Room*!", fake.messages["room-2"])

	assert.Empty(t, errorEntries(hook))
}

func TestProvisioner_Run_DeduplicatesTeamMembers(t *testing.T) {
	fake := newFakeWebex(t)
	lg, _ := newTestLogger(t)

	plans := []config.RoomPlan{
		{Title: "Dev Room", Members: []string{"alice@example.com", "bob@example.com"}},
		{Title: "QA Room", Members: []string{"bob@example.com", "alice@example.com"}},
	}

	err := provision.New(fake.client(), lg).Run(context.Background(), "Project Alpha", plans)
	require.NoError(t, err)

	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, fake.teamMembers)
}

func TestProvisioner_Run_ReusesExistingResources(t *testing.T) {
	fake := newFakeWebex(t)
	fake.teams = []*webex.Team{{ID: "team-1", Name: "Project Alpha"}}
	fake.rooms = []*webex.Room{{ID: "room-1", Title: "Dev Room", TeamID: "team-1"}}
	lg, _ := newTestLogger(t)

	err := provision.New(fake.client(), lg).Run(context.Background(), "Project Alpha", testPlans())
	require.NoError(t, err)

	assert.Equal(t, 0, fake.createTeamCalls)
	assert.Equal(t, 1, fake.createRoomCalls)
	assert.Equal(t, "QA Room", fake.rooms[1].Title)

	assert.Equal(t, "👋 Welcome to the *Dev Room*!", fake.messages["room-1"])
	assert.Equal(t, "👋 Welcome to the *QA Room*!", fake.messages["room-2"])
}

func TestProvisioner_Run_SecondRunCreatesNothing(t *testing.T) {
	fake := newFakeWebex(t)
	lg, _ := newTestLogger(t)
	provisioner := provision.New(fake.client(), lg)

	err := provisioner.Run(context.Background(), "Project Alpha", testPlans())
	require.NoError(t, err)
	err = provisioner.Run(context.Background(), "Project Alpha", testPlans())
	require.NoError(t, err)

	assert.Equal(t, 1, fake.createTeamCalls)
	assert.Equal(t, 2, fake.createRoomCalls)
}

func TestProvisioner_Run_ToleratesMembershipConflicts(t *testing.T) {
	fake := newFakeWebex(t)
	fake.membershipStatus = http.StatusConflict
	lg, hook := newTestLogger(t)

	err := provision.New(fake.client(), lg).Run(context.Background(), "Project Alpha", testPlans())
	require.NoError(t, err)

	// conflicts mean the memberships already exist, not failures
	assert.Empty(t, errorEntries(hook))
	assert.Len(t, fake.messages, 2)
}

func TestProvisioner_Run_ContinuesOnMembershipFailure(t *testing.T) {
	fake := newFakeWebex(t)
	fake.membershipStatus = http.StatusInternalServerError
	lg, hook := newTestLogger(t)

	err := provision.New(fake.client(), lg).Run(context.Background(), "Project Alpha", testPlans())
	require.NoError(t, err)

	// five team member adds and five room member adds, all failed and logged
	entries := errorEntries(hook)
	assert.Len(t, entries, 10)
	assert.Contains(t, entries[0].Message, "membership rejected")

	// the welcome messages still go out
	assert.Len(t, fake.messages, 2)
}

func TestProvisioner_Run_AbortsWhenTeamListFails(t *testing.T) {
	fake := newFakeWebex(t)
	fake.failTeamList = true
	lg, _ := newTestLogger(t)

	err := provision.New(fake.client(), lg).Run(context.Background(), "Project Alpha", testPlans())

	assert.ErrorContains(t, err, "list teams")
	assert.Equal(t, 0, fake.createTeamCalls)
	assert.Equal(t, 0, fake.roomListCalls)
}

func TestProvisioner_Run_AbortsWhenRoomCreateFails(t *testing.T) {
	fake := newFakeWebex(t)
	fake.failRoomCreate = true
	lg, _ := newTestLogger(t)

	err := provision.New(fake.client(), lg).Run(context.Background(), "Project Alpha", testPlans())

	assert.ErrorContains(t, err, `create room "Dev Room"`)
	assert.Empty(t, fake.teamMembers)
	assert.Empty(t, fake.messages)
}

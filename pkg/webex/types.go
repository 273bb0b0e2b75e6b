package webex

import "encoding/json"

type Room struct {
	ID                 string `json:"id,omitempty"`
	Title              string `json:"title,omitempty"`
	Type               string `json:"type,omitempty"`
	TeamID             string `json:"teamId,omitempty"`
	Description        string `json:"description,omitempty"`
	IsLocked           bool   `json:"isLocked,omitempty"`
	IsPublic           bool   `json:"isPublic,omitempty"`
	IsAnnouncementOnly bool   `json:"isAnnouncementOnly,omitempty"`
	CreatorID          string `json:"creatorId,omitempty"`
	Created            string `json:"created,omitempty"`
}

type Team struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	CreatorID string `json:"creatorId,omitempty"`
	Created   string `json:"created,omitempty"`
}

// Membership represents a person's relationship to a room.
type Membership struct {
	ID                string `json:"id,omitempty"`
	RoomID            string `json:"roomId,omitempty"`
	PersonID          string `json:"personId,omitempty"`
	PersonEmail       string `json:"personEmail,omitempty"`
	PersonDisplayName string `json:"personDisplayName,omitempty"`
	IsModerator       bool   `json:"isModerator,omitempty"`
	Created           string `json:"created,omitempty"`
}

// TeamMembership represents a person's relationship to a team.
type TeamMembership struct {
	ID                string `json:"id,omitempty"`
	TeamID            string `json:"teamId,omitempty"`
	PersonID          string `json:"personId,omitempty"`
	PersonEmail       string `json:"personEmail,omitempty"`
	PersonDisplayName string `json:"personDisplayName,omitempty"`
	IsModerator       bool   `json:"isModerator,omitempty"`
	Created           string `json:"created,omitempty"`
}

type Person struct {
	ID          string   `json:"id,omitempty"`
	Emails      []string `json:"emails,omitempty"`
	DisplayName string   `json:"displayName,omitempty"`
	NickName    string   `json:"nickName,omitempty"`
	OrgID       string   `json:"orgId,omitempty"`
	Created     string   `json:"created,omitempty"`
}

// Group is a collection of members used to assign templates and settings.
type Group struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	OrgID       string `json:"orgId,omitempty"`
	MemberSize  int    `json:"memberSize,omitempty"`
	Created     string `json:"created,omitempty"`
}

type Organization struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Created     string `json:"created,omitempty"`
}

type Meeting struct {
	ID            string `json:"id,omitempty"`
	MeetingNumber string `json:"meetingNumber,omitempty"`
	Title         string `json:"title,omitempty"`
	MeetingType   string `json:"meetingType,omitempty"`
	State         string `json:"state,omitempty"`
	WebLink       string `json:"webLink,omitempty"`
	RoomID        string `json:"roomId,omitempty"`
	Start         string `json:"start,omitempty"`
	End           string `json:"end,omitempty"`
}

type Recording struct {
	ID          string `json:"id,omitempty"`
	MeetingID   string `json:"meetingId,omitempty"`
	Topic       string `json:"topic,omitempty"`
	Format      string `json:"format,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	CreateTime  string `json:"createTime,omitempty"`
}

type Message struct {
	ID            string       `json:"id,omitempty"`
	RoomID        string       `json:"roomId,omitempty"`
	ParentID      string       `json:"parentId,omitempty"`
	ToPersonID    string       `json:"toPersonId,omitempty"`
	ToPersonEmail string       `json:"toPersonEmail,omitempty"`
	Text          string       `json:"text,omitempty"`
	Markdown      string       `json:"markdown,omitempty"`
	Files         []string     `json:"files,omitempty"`
	Attachments   []Attachment `json:"attachments,omitempty"`
	PersonID      string       `json:"personId,omitempty"`
	PersonEmail   string       `json:"personEmail,omitempty"`
	Created       string       `json:"created,omitempty"`
}

// Attachment is a rich message attachment, typically an adaptive card. The
// content is kept raw since its schema is owned by the card format.
type Attachment struct {
	ContentType string          `json:"contentType"`
	Content     json.RawMessage `json:"content"`
}

type roomsResponse struct {
	Items []*Room `json:"items"`
}

type teamsResponse struct {
	Items []*Team `json:"items"`
}

type membershipsResponse struct {
	Items []*Membership `json:"items"`
}

type teamMembershipsResponse struct {
	Items []*TeamMembership `json:"items"`
}

type peopleResponse struct {
	Items []*Person `json:"items"`
}

type groupsResponse struct {
	Items []*Group `json:"items"`
}

type organizationsResponse struct {
	Items []*Organization `json:"items"`
}

type meetingsResponse struct {
	Items []*Meeting `json:"items"`
}

type recordingsResponse struct {
	Items []*Recording `json:"items"`
}

type messagesResponse struct {
	Items []*Message `json:"items"`
}

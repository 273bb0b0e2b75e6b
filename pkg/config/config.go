package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// ErrMissingToken is returned when the required API token is not set in the
// environment. The process must not perform any HTTP call without it.
var ErrMissingToken = errors.New("the 'WEBEX_API_TOKEN' environment variable is not set")

// RoomPlan is one room to provision: its title and the email addresses of the
// people to add as members.
type RoomPlan struct {
	Title   string   `json:"title"`
	Members []string `json:"members"`
}

// RoomPlans A JSON-encoded value describing the rooms to provision, in order.
//
// Example: `[{"title": "Dev Room", "members": ["alice@example.com"]}]`
type RoomPlans []RoomPlan

func (r *RoomPlans) Decode(value string) error {
	*r = RoomPlans{}
	if value == "" {
		return nil
	}

	err := json.NewDecoder(strings.NewReader(value)).Decode(r)
	if err != nil {
		return fmt.Errorf("parse room plans: %w", err)
	}

	for _, plan := range *r {
		if plan.Title == "" {
			return fmt.Errorf("parse room plans: room with empty title")
		}
	}

	return nil
}

type Config struct {
	// APIToken The bearer token used to authenticate against the Webex API.
	// Required.
	APIToken string `envconfig:"WEBEX_API_TOKEN"`

	// APIURL The base URL of the Webex API.
	APIURL string `envconfig:"WEBEX_API_URL"`

	// APIVersion The version segment appended to the base URL.
	APIVersion string `envconfig:"WEBEX_API_VERSION"`

	// LogFormat Customize the log format. Can be "text" or "json".
	LogFormat string `envconfig:"WEBEX_LOG_FORMAT"`

	// LogLevel The log level used by the provisioner.
	LogLevel string `envconfig:"WEBEX_LOG_LEVEL"`

	// TeamName The name of the team to provision. The team is created when no
	// team with this exact name exists.
	TeamName string `envconfig:"WEBEX_TEAM_NAME"`

	// Rooms The rooms to provision under the team.
	Rooms RoomPlans `envconfig:"WEBEX_ROOMS"`
}

func defaults() *Config {
	return &Config{
		APIURL:     "https://webexapis.com",
		APIVersion: "v1",
		LogFormat:  "text",
		LogLevel:   "info",
		TeamName:   "Project Alpha",
		Rooms: RoomPlans{
			{
				Title:   "Dev Room",
				Members: []string{"alice@example.com", "bob@example.com", "charlie@example.com"},
			},
			{
				Title:   "QA Room",
				Members: []string{"diana@example.com", "eve@example.com"},
			},
		},
	}
}

// New builds the configuration from the environment, on top of the default
// provisioning plan.
func New() (*Config, error) {
	cfg := defaults()
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, err
	}

	if cfg.APIToken == "" {
		return nil, ErrMissingToken
	}

	return cfg, nil
}

package config_test

import (
	"testing"

	"github.com/collabops/webex-provisioner/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("WEBEX_API_TOKEN", "")

		cfg, err := config.New()
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, config.ErrMissingToken)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("WEBEX_API_TOKEN", "some-token")

		cfg, err := config.New()
		require.NoError(t, err)

		assert.Equal(t, "some-token", cfg.APIToken)
		assert.Equal(t, "https://webexapis.com", cfg.APIURL)
		assert.Equal(t, "v1", cfg.APIVersion)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "Project Alpha", cfg.TeamName)
		require.Len(t, cfg.Rooms, 2)
		assert.Equal(t, "Dev Room", cfg.Rooms[0].Title)
		assert.Equal(t, "QA Room", cfg.Rooms[1].Title)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("WEBEX_API_TOKEN", "some-token")
		t.Setenv("WEBEX_API_URL", "https://api.test")
		t.Setenv("WEBEX_TEAM_NAME", "Project Beta")
		t.Setenv("WEBEX_ROOMS", `[{"title": "War Room", "members": ["alice@example.com"]}]`)

		cfg, err := config.New()
		require.NoError(t, err)

		assert.Equal(t, "https://api.test", cfg.APIURL)
		assert.Equal(t, "Project Beta", cfg.TeamName)
		require.Len(t, cfg.Rooms, 1)
		assert.Equal(t, "War Room", cfg.Rooms[0].Title)
		assert.Equal(t, []string{"alice@example.com"}, cfg.Rooms[0].Members)
	})
}

func TestRoomPlansDecode(t *testing.T) {
	t.Run("order is preserved", func(t *testing.T) {
		plans := config.RoomPlans{}
		err := plans.Decode(`[
			{"title": "Dev Room", "members": ["alice@example.com", "bob@example.com"]},
			{"title": "QA Room", "members": ["diana@example.com"]}
		]`)

		require.NoError(t, err)
		require.Len(t, plans, 2)
		assert.Equal(t, "Dev Room", plans[0].Title)
		assert.Equal(t, "QA Room", plans[1].Title)
	})

	t.Run("empty value", func(t *testing.T) {
		plans := config.RoomPlans{}
		err := plans.Decode("")

		assert.NoError(t, err)
		assert.Empty(t, plans)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		plans := config.RoomPlans{}
		err := plans.Decode(`{"Dev Room": ["alice@example.com"]}`)

		assert.ErrorContains(t, err, "parse room plans")
	})

	t.Run("empty title", func(t *testing.T) {
		plans := config.RoomPlans{}
		err := plans.Decode(`[{"title": "", "members": []}]`)

		assert.ErrorContains(t, err, "empty title")
	})
}

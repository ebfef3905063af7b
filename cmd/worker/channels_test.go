package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-website/internal/infra/notifier"
	"news-website/internal/usecase/notify"
)

func TestChannelHealthHandler(t *testing.T) {
	svc := notify.NewService([]notify.Channel{
		notify.NewDiscordChannel(notifier.DiscordConfig{}),
		notify.NewChannel("log", notifier.NewNoOpNotifier()),
	}, 2)

	rec := httptest.NewRecorder()
	channelHealthHandler(svc)(rec, httptest.NewRequest(http.MethodGet, "/health/channels", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body channelHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Healthy)
	require.Len(t, body.Channels, 2)
	assert.Equal(t, "discord", body.Channels[0].Name)
	assert.False(t, body.Channels[0].Enabled)
	assert.True(t, body.Channels[1].Enabled)
}

func TestLoadDiscordConfig(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"unset", "", ""},
		{"valid", "https://discord.com/api/webhooks/1/abc", "https://discord.com/api/webhooks/1/abc"},
		{"http", "http://discord.com/api/webhooks/1/abc", ""},
		{"other host", "https://example.com/api/webhooks/1/abc", ""},
		{"bad path", "https://discord.com/channels/1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DISCORD_WEBHOOK_URL", tt.url)
			t.Setenv("SITE_URL", "https://news.example.com/")
			cfg := loadDiscordConfig(initLogger())
			assert.Equal(t, tt.want, cfg.WebhookURL)
			if tt.want != "" {
				assert.Equal(t, "https://news.example.com", cfg.SiteURL)
			}
		})
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatnsplit/internal/friends"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("EATNSPLIT_AVATAR_BASE", "")
	t.Setenv("EATNSPLIT_LOG_FILE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_SERVICE_NAME", "")

	cfg := Load()
	assert.Equal(t, friends.DefaultAvatarBase, cfg.AvatarBase)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.OTLPEndpoint)
	assert.Equal(t, "eatnsplit", cfg.ServiceName)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("EATNSPLIT_AVATAR_BASE", "https://avatars.example/?u=")
	t.Setenv("EATNSPLIT_LOG_FILE", "/tmp/eatnsplit.log")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	t.Setenv("OTEL_SERVICE_NAME", "splitter")

	cfg := Load()
	assert.Equal(t, "https://avatars.example/?u=", cfg.AvatarBase)
	assert.Equal(t, "/tmp/eatnsplit.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "localhost:4318", cfg.OTLPEndpoint)
	assert.Equal(t, "splitter", cfg.ServiceName)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{AvatarBase: friends.DefaultAvatarBase, LogLevel: "info", ServiceName: "eatnsplit"}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"uppercase level", func(c *Config) { c.LogLevel = "WARN" }, ""},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"relative avatar", func(c *Config) { c.AvatarBase = "/avatars?u=" }, "must be an absolute URL"},
		{"tracing without name", func(c *Config) {
			c.OTLPEndpoint = "localhost:4318"
			c.ServiceName = ""
		}, "OTEL_SERVICE_NAME"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	c := &Config{AvatarBase: "nope", LogLevel: "loud", ServiceName: "x"}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
	assert.Contains(t, err.Error(), "invalid avatar base")
}

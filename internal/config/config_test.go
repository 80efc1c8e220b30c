package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimal = `
[api]
base_url = "https://api.example.com/api/v1"

[database]
dbname = "bff"
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse(minimal)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, 10, cfg.API.Timeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "bff_session", cfg.Session.CookieName)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "host=localhost port=5432 user= password= dbname=bff sslmode=disable", cfg.Database.DSN())
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse(minimal + `
[server]
http_port = 9000

[redis]
enabled = true
addr = "redis:6379"
ttl = 30

[session]
cookie_name = "sid"
ttl = 600
`)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, 10*time.Minute, Seconds(cfg.Session.TTL))
	assert.Equal(t, 300, cfg.Session.UserTTL)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing base url", data: "[database]\ndbname = \"bff\"\n"},
		{name: "relative base url", data: "[api]\nbase_url = \"/api\"\n[database]\ndbname = \"bff\"\n"},
		{name: "missing dbname", data: "[api]\nbase_url = \"https://api.example.com\"\n"},
		{name: "bad port", data: minimal + "[server]\nhttp_port = 70000\n"},
		{name: "redis without ttl", data: minimal + "[redis]\nenabled = true\nttl = 0\n"},
		{name: "unknown key", data: minimal + "[session]\ncookie = \"x\"\n"},
		{name: "bad callback", data: "[api]\nbase_url = \"https://api.example.com\"\npayment_callback_url = \"callback\"\n[database]\ndbname = \"bff\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("[server\nhttp_port = ")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/api/v1", cfg.API.BaseURL)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

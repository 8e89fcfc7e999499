package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[catalog]
source = "postgres"

[session]
store = "redis"
jwt_secret = "from-file"
ttl_minutes = 30

[schedule]
grid_start = "07:30"
grid_slot_count = 10
slot_duration_minutes = 90

[cors]
allowed_origins = ["https://spa.example.com"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, CatalogSourcePostgres, cfg.Catalog.Source)
	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL())
	assert.Equal(t, "spa:session:", cfg.Session.Prefix)

	grid := cfg.Schedule.Grid()
	assert.Equal(t, "07:30", grid.Start.String())
	assert.Equal(t, 10, grid.SlotCount)
	assert.Equal(t, 90, grid.SlotDurationMinutes)
	assert.Equal(t, 60, grid.SlotPixelHeight)

	assert.Equal(t, []string{"https://spa.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Contains(t, cfg.Database.DSN(), "host=localhost port=5432")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[session]
jwt_secret = "from-file"
`)
	t.Setenv(EnvJWTSecret, "from-env")
	t.Setenv(EnvDatabasePassword, "db-secret")
	t.Setenv(EnvHTTPPort, "8181")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Session.JWTSecret)
	assert.Equal(t, "db-secret", cfg.Database.Password)
	assert.Equal(t, 8181, cfg.Server.HTTPPort)

	t.Setenv(EnvHTTPPort, "eighty")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "grid past midnight",
			content: "[session]\njwt_secret = \"x\"\n[schedule]\ngrid_start = \"20:00\"\ngrid_slot_count = 6\n",
			wantMsg: "exceeds one day",
		},
		{
			name:    "bad grid start",
			content: "[session]\njwt_secret = \"x\"\n[schedule]\ngrid_start = \"8am\"\n",
			wantMsg: "HH:MM",
		},
		{
			name:    "unknown catalog source",
			content: "[session]\njwt_secret = \"x\"\n[catalog]\nsource = \"mysql\"\n",
			wantMsg: "catalog.source",
		},
		{
			name:    "missing secret",
			content: "[session]\nstore = \"memory\"\n",
			wantMsg: "jwt_secret",
		},
		{
			name:    "unknown session store",
			content: "[session]\njwt_secret = \"x\"\nstore = \"etcd\"\n",
			wantMsg: "session.store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

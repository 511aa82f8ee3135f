package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadAppConfig(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		env     map[string]string
		check   func(t *testing.T, cfg AppConfig)
		wantErr bool
	}{
		{
			name: "file overrides defaults",
			body: "server:\n  port: 9000\nrouting:\n  busVelocity: 30\n  busWaitTime: 2\ninput:\n  path: requests.json\n",
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.Equal(t, 30.0, cfg.Routing.BusVelocity)
				assert.Equal(t, 2, cfg.Routing.BusWaitTime)
				assert.Equal(t, "requests.json", cfg.Input.Path)
				assert.Equal(t, 1024, cfg.Cache.RouteEntries, "unset keys keep defaults")
			},
		},
		{
			name: "environment overrides file",
			body: "server:\n  port: 9000\n",
			env:  map[string]string{EnvPort: "9100", EnvInput: "in.json", EnvGTFS: "feed.zip"},
			check: func(t *testing.T, cfg AppConfig) {
				assert.Equal(t, 9100, cfg.Server.Port)
				assert.Equal(t, "in.json", cfg.Input.Path)
				assert.Equal(t, "feed.zip", cfg.GTFS.Source())
			},
		},
		{name: "bad port", body: "server:\n  port: 0\n", wantErr: true},
		{name: "bad velocity", body: "routing:\n  busVelocity: 0\n", wantErr: true},
		{name: "negative wait", body: "routing:\n  busWaitTime: -1\n", wantErr: true},
		{name: "bad url", body: "gtfs:\n  staticURL: not a url\n", wantErr: true},
		{name: "bad yaml", body: "server: [", wantErr: true},
		{name: "bad env port", body: "", env: map[string]string{EnvPort: "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := LoadAppConfig(writeConfig(t, tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	_, err := LoadAppConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestLoadAppConfigDefaults(t *testing.T) {
	for _, k := range []string{EnvPort, EnvInput, EnvGTFS} {
		t.Setenv(k, "")
	}
	cfg, err := LoadAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestGTFSSource(t *testing.T) {
	assert.Equal(t, "", GTFSConfig{}.Source())
	assert.Equal(t, "http://x/feed.zip", GTFSConfig{StaticURL: "http://x/feed.zip"}.Source())
	assert.Equal(t, "feed.zip", GTFSConfig{StaticPath: "feed.zip", StaticURL: "http://x/feed.zip"}.Source())
}

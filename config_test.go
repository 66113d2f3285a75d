package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rmitchellscott/reather/airports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfig_defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"REATHER_USER_AGENT", "REATHER_HTTP_TIMEOUT", "REATHER_ADDRESS_FILE",
		"REATHER_LOG_LEVEL", "REATHER_AIRPORTS_CSV_URL", "REATHER_EARTHQUAKE_RADIUS", "REATHER_REQUESTS_PER_SECOND"} {
		unsetEnv(t, key)
	}

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.weather.gov", cfg.Endpoints.NWS)
	assert.Equal(t, airports.DefaultCSVURL, cfg.Endpoints.AirportsCSV)
	assert.Equal(t, defaultUserAgent, cfg.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.InDelta(t, 250.0, cfg.EarthquakeRadiusMiles, 1e-9)
	assert.Equal(t, 2, cfg.ForecastPeriods)
	assert.Equal(t, 50, cfg.SearchDisplayLimit)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.AddressFile)
}

func TestLoadConfig_file(t *testing.T) {
	t.Chdir(t.TempDir())
	unsetEnv(t, "REATHER_HTTP_TIMEOUT")
	unsetEnv(t, "REATHER_USER_AGENT")

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
endpoints:
  nws: http://localhost:9000
user_agent: my-station/2.0 (ops@example.com)
http_timeout: 10s
forecast_periods: 4
search_display_limit: 10
address_file: /var/lib/reather/addresses.txt
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.Endpoints.NWS)
	assert.Equal(t, "https://geocoding.geo.census.gov", cfg.Endpoints.Census, "unset keys keep defaults")
	assert.Equal(t, "my-station/2.0 (ops@example.com)", cfg.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 4, cfg.ForecastPeriods)
	assert.Equal(t, 10, cfg.SearchDisplayLimit)
	assert.Equal(t, "/var/lib/reather/addresses.txt", cfg.AddressFile)
}

func TestLoadConfig_defaultFileName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	unsetEnv(t, "REATHER_LOG_LEVEL")

	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultConfigFile), []byte("log_level: info\n"), 0o644))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_errors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	unsetEnv(t, "REATHER_HTTP_TIMEOUT")
	unsetEnv(t, "REATHER_EARTHQUAKE_RADIUS")

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("endpoints: [unclosed"), 0o644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "failed to unmarshal config")

	timeout := filepath.Join(dir, "timeout.yaml")
	require.NoError(t, os.WriteFile(timeout, []byte("http_timeout: soon\n"), 0o644))
	_, err = LoadConfig(timeout)
	assert.ErrorContains(t, err, "failed to parse http_timeout")

	radius := filepath.Join(dir, "radius.yaml")
	require.NoError(t, os.WriteFile(radius, []byte("earthquake_radius_miles: -5\n"), 0o644))
	_, err = LoadConfig(radius)
	assert.ErrorContains(t, err, "earthquake_radius_miles must be positive")
}

func TestLoadConfig_env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("REATHER_HTTP_TIMEOUT", "3s")
	t.Setenv("REATHER_EARTHQUAKE_RADIUS", "75.5")
	t.Setenv("REATHER_AIRPORTS_CSV_URL", "http://mirror.local/airports.csv")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.InDelta(t, 75.5, cfg.EarthquakeRadiusMiles, 1e-9)
	assert.Equal(t, "http://mirror.local/airports.csv", cfg.Endpoints.AirportsCSV)
}

func TestLoadConfig_dotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	unsetEnv(t, "REATHER_ADDRESS_FILE")
	unsetEnv(t, "REATHER_REQUESTS_PER_SECOND")

	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultEnvFile),
		[]byte("REATHER_ADDRESS_FILE=/srv/addresses.txt\nREATHER_REQUESTS_PER_SECOND=0.5\n"), 0o644))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/addresses.txt", cfg.AddressFile)
	assert.InDelta(t, 0.5, cfg.RequestsPerSecond, 1e-9)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	lookup := func(env map[string]string) func(string) (string, bool) {
		return func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		}
	}

	cfg := DefaultConfig()
	require.NoError(t, applyEnv(&cfg, lookup(map[string]string{
		"REATHER_USER_AGENT": "ua",
		"REATHER_LOG_LEVEL":  "",
	})))
	assert.Equal(t, "ua", cfg.UserAgent)
	assert.Equal(t, "warn", cfg.LogLevel, "empty values are ignored")

	cfg = DefaultConfig()
	err := applyEnv(&cfg, lookup(map[string]string{"REATHER_EARTHQUAKE_RADIUS": "far"}))
	assert.ErrorContains(t, err, "REATHER_EARTHQUAKE_RADIUS")
}

func TestConfigFinalize(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.HTTPTimeoutStr = ""
	cfg.UserAgent = ""
	cfg.ForecastPeriods = 0
	require.NoError(t, cfg.finalize())

	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, defaultUserAgent, cfg.UserAgent)
	assert.Equal(t, 1, cfg.ForecastPeriods)
}

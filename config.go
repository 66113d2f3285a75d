package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rmitchellscott/reather/airports"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "reather.yaml"
	defaultEnvFile    = ".env"
	defaultUserAgent  = "reather-app/0.1 (go-cli-weather-app)"
)

// Endpoints holds the base URL of every upstream service.
type Endpoints struct {
	Census      string `yaml:"census"`
	NWS         string `yaml:"nws"`
	TidesData   string `yaml:"tides_data"`
	TidesMeta   string `yaml:"tides_meta"`
	USGS        string `yaml:"usgs"`
	Nominatim   string `yaml:"nominatim"`
	AirportsCSV string `yaml:"airports_csv"`
}

type Config struct {
	Endpoints             Endpoints     `yaml:"endpoints"`
	UserAgent             string        `yaml:"user_agent"`
	HTTPTimeoutStr        string        `yaml:"http_timeout"`
	HTTPTimeout           time.Duration `yaml:"-"`
	RequestsPerSecond     float64       `yaml:"requests_per_second"`
	AddressFile           string        `yaml:"address_file"`
	EarthquakeRadiusMiles float64       `yaml:"earthquake_radius_miles"`
	ForecastPeriods       int           `yaml:"forecast_periods"`
	SearchDisplayLimit    int           `yaml:"search_display_limit"`
	LogLevel              string        `yaml:"log_level"`
}

// DefaultConfig points at the public production services.
func DefaultConfig() Config {
	return Config{
		Endpoints: Endpoints{
			Census:      "https://geocoding.geo.census.gov",
			NWS:         "https://api.weather.gov",
			TidesData:   "https://api.tidesandcurrents.noaa.gov/api/prod",
			TidesMeta:   "https://api.tidesandcurrents.noaa.gov/mdapi/prod/webapi",
			USGS:        "https://earthquake.usgs.gov/earthquakes/feed/v1.0",
			Nominatim:   "https://nominatim.openstreetmap.org",
			AirportsCSV: airports.DefaultCSVURL,
		},
		UserAgent:             defaultUserAgent,
		HTTPTimeoutStr:        "30s",
		RequestsPerSecond:     2,
		EarthquakeRadiusMiles: 250,
		ForecastPeriods:       2,
		SearchDisplayLimit:    50,
		LogLevel:              "warn",
	}
}

// LoadConfig layers, in order: defaults, the YAML file, a .env file, and
// REATHER_* environment variables. An empty configPath reads reather.yaml
// when it exists; an explicit path must exist.
func LoadConfig(configPath string) (Config, error) {
	cfg := DefaultConfig()

	path := configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load %s: %w", defaultEnvFile, err)
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.finalize(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides cfg from REATHER_* variables.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"REATHER_USER_AGENT":       &cfg.UserAgent,
		"REATHER_HTTP_TIMEOUT":     &cfg.HTTPTimeoutStr,
		"REATHER_ADDRESS_FILE":     &cfg.AddressFile,
		"REATHER_LOG_LEVEL":        &cfg.LogLevel,
		"REATHER_AIRPORTS_CSV_URL": &cfg.Endpoints.AirportsCSV,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	floats := map[string]*float64{
		"REATHER_EARTHQUAKE_RADIUS":   &cfg.EarthquakeRadiusMiles,
		"REATHER_REQUESTS_PER_SECOND": &cfg.RequestsPerSecond,
	}
	for key, dst := range floats {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", key, err)
		}
		*dst = f
	}
	return nil
}

// finalize parses derived fields and rejects unusable values.
func (c *Config) finalize() error {
	if c.HTTPTimeoutStr == "" {
		c.HTTPTimeout = 30 * time.Second
	} else {
		d, err := time.ParseDuration(c.HTTPTimeoutStr)
		if err != nil {
			return fmt.Errorf("failed to parse http_timeout: %w", err)
		}
		c.HTTPTimeout = d
	}

	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.EarthquakeRadiusMiles <= 0 {
		return fmt.Errorf("earthquake_radius_miles must be positive, got %v", c.EarthquakeRadiusMiles)
	}
	if c.ForecastPeriods <= 0 {
		c.ForecastPeriods = 1
	}
	if c.SearchDisplayLimit <= 0 {
		c.SearchDisplayLimit = 1
	}
	return nil
}

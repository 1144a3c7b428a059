package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "catalogue-search.json"

	// DefaultPort is the default HTTP listen port.
	DefaultPort = 8080

	// DefaultHost is the default HTTP listen host.
	DefaultHost = "0.0.0.0"

	// DefaultRosettaURL is the default search API base URL.
	DefaultRosettaURL = "https://rosetta.nationalarchives.gov.uk/api"
)

// Config holds the service configuration.
type Config struct {
	// Host is the HTTP listen host.
	Host string `json:"host,omitempty"`

	// Port is the HTTP listen port.
	Port int `json:"port,omitempty"`

	// RosettaURL is the search API base URL, without a trailing slash.
	RosettaURL string `json:"rosetta_url,omitempty"`

	// RequestTimeout bounds outbound API calls.
	RequestTimeout Duration `json:"request_timeout,omitempty"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"log_level,omitempty"`
}

// Duration is a time.Duration that unmarshals from a JSON string like
// "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Host:           DefaultHost,
		Port:           DefaultPort,
		RosettaURL:     DefaultRosettaURL,
		RequestTimeout: Duration(30 * time.Second),
		LogLevel:       "info",
	}
}

// Load reads configuration from path, falling back to defaults when
// the file does not exist, then applies environment overrides. An
// empty path means only defaults and the environment apply.
func Load(path string) (*Config, error) {
	// errors from a missing .env are expected and ignored
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.RosettaURL == "" {
		return nil, fmt.Errorf("rosetta_url must be set")
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides config values from the environment. Variables
// use the CATSEARCH_ prefix.
func applyEnv(cfg *Config) {
	if v := os.Getenv("CATSEARCH_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("CATSEARCH_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("CATSEARCH_ROSETTA_URL"); v != "" {
		cfg.RosettaURL = v
	}
	if v := os.Getenv("CATSEARCH_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = Duration(d)
		}
	}
	if v := os.Getenv("CATSEARCH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

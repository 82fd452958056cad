// Package config loads application settings from a YAML file and the
// environment. Flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the public endpoint serving the amphibians list.
const DefaultBaseURL = "https://android-kotlin-fun-mars-server.appspot.com/"

// Environment overrides.
const (
	EnvConfigFile = "AMPHIBIANS_CONFIG"
	EnvBaseURL    = "AMPHIBIANS_BASE_URL"
	EnvTimeout    = "AMPHIBIANS_TIMEOUT"
	EnvLogLevel   = "AMPHIBIANS_LOG_LEVEL"
	EnvLogFile    = "AMPHIBIANS_LOG_FILE"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full application configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the data fetcher.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout bounds a single fetch. Zero leaves the HTTP client default.
	Timeout Duration `yaml:"timeout"`
}

// LoggingConfig configures the file logger.
type LoggingConfig struct {
	// Level is a zerolog level name. Empty lets each command pick: info for
	// the browser, warn for fetch.
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Duration is a time.Duration that unmarshals from strings like "5s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
		},
		Logging: LoggingConfig{
			Format: "json",
		},
	}
}

// DefaultPath returns ~/.config/amphibians/config.yaml (platform equivalent),
// or the value of AMPHIBIANS_CONFIG when set.
func DefaultPath(lookupEnv func(string) (string, bool)) string {
	if p, ok := lookupEnv(EnvConfigFile); ok && p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "amphibians", "config.yaml")
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error. An empty path skips the file.
// The result is not validated: callers apply their own overrides first and
// then call Validate.
func Load(path string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(lookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvBaseURL); ok && v != "" {
		c.API.BaseURL = v
	}
	if v, ok := lookupEnv(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvTimeout, err)
		}
		c.API.Timeout = Duration(d)
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok && v != "" {
		c.Logging.File = v
	}
	return nil
}

// Validate checks that the base URL is absolute http(s) and the timeout is not negative.
func (c Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: api.base_url: %w", ErrInvalid, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: api.base_url must be http or https, got %q", ErrInvalid, c.API.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: api.base_url has no host", ErrInvalid)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("%w: api.timeout must be >= 0, got %s", ErrInvalid, time.Duration(c.API.Timeout))
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: logging.format must be json or console, got %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

// Write saves cfg as YAML, creating parent directories.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

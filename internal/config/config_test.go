package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: http://localhost:8080/
  timeout: 5s
logging:
  level: debug
`), 0o600))

	cfg, err := Load(path, envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/", cfg.API.BaseURL)
	assert.Equal(t, Duration(5*time.Second), cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: http://file/\n"), 0o600))

	cfg, err := Load(path, envMap(map[string]string{
		EnvBaseURL:  "http://env/",
		EnvTimeout:  "250ms",
		EnvLogLevel: "warn",
		EnvLogFile:  "/tmp/x.log",
	}))
	require.NoError(t, err)
	assert.Equal(t, "http://env/", cfg.API.BaseURL)
	assert.Equal(t, Duration(250*time.Millisecond), cfg.API.Timeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/x.log", cfg.Logging.File)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("api: [unclosed"), 0o600))
	_, err := Load(bad, envMap(nil))
	assert.Error(t, err)

	badDur := filepath.Join(dir, "dur.yaml")
	require.NoError(t, os.WriteFile(badDur, []byte("api:\n  timeout: soon\n"), 0o600))
	_, err = Load(badDur, envMap(nil))
	assert.Error(t, err)

	_, err = Load("", envMap(map[string]string{EnvTimeout: "nope"}))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_LeavesValidationToCaller(t *testing.T) {
	cfg, err := Load("", envMap(map[string]string{EnvBaseURL: "ftp://bad"}))
	require.NoError(t, err)
	assert.Equal(t, "ftp://bad", cfg.API.BaseURL)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg.API.BaseURL = "https://example.test/"
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "no trailing slash", mutate: func(c *Config) { c.API.BaseURL = "https://example.com/api" }},
		{name: "ftp scheme", mutate: func(c *Config) { c.API.BaseURL = "ftp://example.com/" }, wantErr: true},
		{name: "relative", mutate: func(c *Config) { c.API.BaseURL = "/amphibians" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.API.Timeout = Duration(-time.Second) }, wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.API.Timeout = Duration(3 * time.Second)
	require.NoError(t, Write(path, cfg))

	got, err := Load(path, envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaultPath_EnvWins(t *testing.T) {
	assert.Equal(t, "/etc/amph.yaml", DefaultPath(envMap(map[string]string{EnvConfigFile: "/etc/amph.yaml"})))
}

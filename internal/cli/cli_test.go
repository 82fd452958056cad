package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amphibians/internal/amphibian"
	"amphibians/internal/config"
)

const listBody = `[
 {"name":"Great Basin Spadefoot","type":"Toad","description":"Nocturnal.","imgSrc":"https://img.test/spadefoot.png"},
 {"name":"Roraima Bush Toad","type":"Toad","description":"Crawls.","imgSrc":"https://img.test/roraima.png"}
]`

func mapEnv(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

// execute runs the root command with a config path under a temp dir.
func execute(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	if env == nil {
		env = map[string]string{}
	}
	if _, ok := env[config.EnvConfigFile]; !ok {
		env[config.EnvConfigFile] = filepath.Join(t.TempDir(), "config.yaml")
	}
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmdWithEnv("test", mapEnv(env))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func amphibianServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/amphibians" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_Table(t *testing.T) {
	srv := amphibianServer(t, http.StatusOK, listBody)

	out, _, err := execute(t, nil, "fetch", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Great Basin Spadefoot")
	assert.Contains(t, out, "https://img.test/roraima.png")
}

func TestFetch_JSONKeepsOrder(t *testing.T) {
	srv := amphibianServer(t, http.StatusOK, listBody)

	out, _, err := execute(t, nil, "fetch", "-o", "json", "--base-url", srv.URL+"/")
	require.NoError(t, err)

	var got []amphibian.Amphibian
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Great Basin Spadefoot", got[0].Name)
	assert.Equal(t, "Roraima Bush Toad", got[1].Name)
}

func TestFetch_EmptyList(t *testing.T) {
	srv := amphibianServer(t, http.StatusOK, `[]`)

	out, _, err := execute(t, nil, "fetch", "--output", "json", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)

	out, _, err = execute(t, nil, "fetch", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "No amphibians.")
}

func TestFetch_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   string
	}{
		{"server error", http.StatusInternalServerError, "boom", "http_status"},
		{"malformed json", http.StatusOK, `{"name":`, "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := amphibianServer(t, tt.status, tt.body)
			_, stderr, err := execute(t, nil, "fetch", "--base-url", srv.URL)
			require.Error(t, err)
			assert.Contains(t, stderr, tt.kind)
		})
	}
}

func TestFetch_UsesEnvBaseURL(t *testing.T) {
	srv := amphibianServer(t, http.StatusOK, listBody)

	out, _, err := execute(t, map[string]string{config.EnvBaseURL: srv.URL}, "fetch")
	require.NoError(t, err)
	assert.Contains(t, out, "Roraima Bush Toad")
}

func TestFetch_FlagOverridesInvalidEnvAndFile(t *testing.T) {
	srv := amphibianServer(t, http.StatusOK, listBody)

	out, _, err := execute(t, map[string]string{config.EnvBaseURL: "ftp://bad"},
		"fetch", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Great Basin Spadefoot")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: not a url\n"), 0o600))
	out, _, err = execute(t, nil, "fetch", "--config", path, "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Roraima Bush Toad")

	_, _, err = execute(t, map[string]string{config.EnvBaseURL: "ftp://bad"}, "fetch")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestFetch_LogLevel(t *testing.T) {
	srv := amphibianServer(t, http.StatusOK, listBody)

	_, stderr, err := execute(t, nil, "fetch", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "fetch succeeded", "fetch logs warnings and above by default")

	_, stderr, err = execute(t, map[string]string{config.EnvLogLevel: "info"}, "fetch", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, stderr, "fetch succeeded")
}

func TestFetch_RejectsUnknownOutput(t *testing.T) {
	_, _, err := execute(t, nil, "fetch", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output")
}

func TestRoot_RejectsInvalidFlags(t *testing.T) {
	_, _, err := execute(t, nil, "fetch", "--base-url", "ftp://example.test")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, nil, "fetch", "--timeout=-1s")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestRoot_RefusesWithoutTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func(*os.File) bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	_, _, err := execute(t, nil)
	require.ErrorIs(t, err, ErrNotTerminal)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	env := map[string]string{config.EnvConfigFile: path}

	out, _, err := execute(t, env, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.Load(path, mapEnv(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, _, err = execute(t, env, "config", "init")
	require.Error(t, err, "existing file needs --force")

	_, _, err = execute(t, env, "config", "init", "--force")
	require.NoError(t, err)

	out, _, err = execute(t, env, "config", "show", "--base-url", "http://localhost:9000/")
	require.NoError(t, err)
	assert.Contains(t, out, "base_url: http://localhost:9000/")
}

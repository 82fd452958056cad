// Package cli wires configuration, logging and tracing into the cobra
// commands: the root command runs the terminal UI, fetch prints the list
// once, config init writes a starter file.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"amphibians/internal/config"
	"amphibians/internal/network"
	"amphibians/internal/trace"
)

// ErrNotTerminal is returned by the root command when stdout is redirected.
var ErrNotTerminal = errors.New("stdout is not a terminal; use `amphibians fetch` for scripted output")

// isTerminal reports whether f is an interactive terminal. Replaced in tests.
var isTerminal = func(f *os.File) bool { //nolint:gochecknoglobals // test seam
	return term.IsTerminal(int(f.Fd()))
}

// env holds what every subcommand needs after flag parsing.
type env struct {
	lookupEnv func(string) (string, bool)
	cfg       config.Config
	cfgPath   string
	debug     bool
}

// networkConfig returns the fetcher settings derived from the loaded config.
func (e *env) networkConfig(version string) network.Config {
	return network.Config{
		BaseURL:   e.cfg.API.BaseURL,
		Timeout:   time.Duration(e.cfg.API.Timeout),
		UserAgent: "amphibians/" + version,
	}
}

// startTracing installs the OTLP provider when configured. The returned
// func flushes it and is always safe to call.
func (e *env) startTracing(ctx context.Context) (func(), error) {
	tp, err := trace.Setup(ctx, e.lookupEnv)
	if err != nil {
		return func() {}, fmt.Errorf("tracing: %w", err)
	}
	return func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(sctx)
	}, nil
}

// NewRootCmd creates the root command reading the process environment.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for tests.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	e := &env{lookupEnv: lookupEnv}

	var (
		cfgPath string
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:     "amphibians",
		Short:   "Browse amphibians in the terminal",
		Long:    "Fetches the amphibian list and shows it as a grid, a category list and detail pages.",
		Version: ver,
		Example: `  # Start the browser
  amphibians

  # Use another server
  amphibians --base-url http://localhost:8080/

  # Print the list as JSON
  amphibians fetch --output json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path := cfgPath
			if path == "" {
				path = config.DefaultPath(lookupEnv)
			}
			cfg, err := config.Load(path, lookupEnv)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("base-url") {
				cfg.API.BaseURL = baseURL
			}
			if cmd.Flags().Changed("timeout") {
				cfg.API.Timeout = config.Duration(timeout)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			e.cfg = cfg
			e.cfgPath = path
			e.debug, _ = cmd.Flags().GetBool("debug")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, e, ver)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "config file (default ~/.config/amphibians/config.yaml)")
	pf.StringVar(&baseURL, "base-url", "", "server base URL, <base>/amphibians is requested")
	pf.DurationVar(&timeout, "timeout", 0, "per-request timeout (0 = none)")
	pf.Bool("debug", false, "enable debug logging")

	cmd.AddCommand(newFetchCmd(e, ver), newConfigCmd(e))
	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute(ver string) int {
	if err := NewRootCmd(ver).Execute(); err != nil {
		return 1
	}
	return 0
}

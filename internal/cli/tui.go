package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"amphibians/internal/data"
	"amphibians/internal/images"
	"amphibians/internal/logging"
	"amphibians/internal/state"
	"amphibians/internal/ui"
)

func runTUI(cmd *cobra.Command, e *env, ver string) error {
	if !isTerminal(os.Stdout) {
		return ErrNotTerminal
	}

	logs, err := logging.New(logging.Config{
		Level:  e.cfg.Logging.Level,
		Format: e.cfg.Logging.Format,
		File:   e.cfg.Logging.File,
		Debug:  e.debug,
	})
	if err != nil {
		cmd.PrintErrf("Warning: logging disabled: %v\n", err)
	}
	defer logs.Close()
	log := logs.Logger

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	stopTracing, err := e.startTracing(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("tracing disabled")
	}
	defer stopTracing()

	container := data.NewContainer(e.networkConfig(ver), log)
	repo, err := container.Repository()
	if err != nil {
		return err
	}

	log.Info().
		Str("version", ver).
		Str("config", e.cfgPath).
		Str("base_url", e.cfg.API.BaseURL).
		Msg("starting")

	loader := images.NewLoader(
		&http.Client{Timeout: time.Duration(e.cfg.API.Timeout)},
		logging.Component(log, "images"),
	)
	store := state.NewStore(ctx, repo, logging.Component(log, "state"))
	app := ui.NewAppModel(ctx, store, images.NewTracker(loader), logging.Component(log, "ui"))

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

package ui

import (
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

const panicToast = "Unexpected error (see logs)"

// safeModel recovers panics from the wrapped app so a bad render or message
// leaves the terminal usable.
type safeModel struct {
	app *appModelAdapter
	log zerolog.Logger
}

func wrapSafe(app *appModelAdapter, log zerolog.Logger) safeModel {
	return safeModel{app: app, log: log}
}

var _ tea.Model = safeModel{}

func (s safeModel) Init() tea.Cmd {
	return s.app.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Str("where", "ui.update").
				Str("panic", fmt.Sprint(r)).
				Str("stack", string(debug.Stack())).
				Msg("panic recovered")
			s.app.Toast = panicToast
			tm = s
			cmd = nil
		}
	}()
	_, cmd = s.app.Update(msg)
	return s, cmd
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Str("where", "ui.view").
				Str("panic", fmt.Sprint(r)).
				Str("stack", string(debug.Stack())).
				Msg("panic recovered")
			out = panicToast
		}
	}()
	return s.app.View()
}

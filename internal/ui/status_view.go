package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingView is shown while the list is being fetched.
type LoadingView struct {
	spinner spinner.Model
}

var _ View = (*LoadingView)(nil)

// NewLoadingView creates a loading view with a running spinner.
func NewLoadingView() *LoadingView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &LoadingView{spinner: s}
}

// Init implements View.
func (l *LoadingView) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update implements View.
func (l *LoadingView) Update(msg tea.Msg) (View, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	}
	return l, nil
}

// View implements View.
func (l *LoadingView) View() string {
	return l.spinner.View() + " " + Styles.Muted.Render("Loading…")
}

// ErrorView is shown when the fetch failed. r retries.
type ErrorView struct{}

var _ View = (*ErrorView)(nil)

// NewErrorView creates an error view.
func NewErrorView() *ErrorView { return &ErrorView{} }

// Init implements View.
func (e *ErrorView) Init() tea.Cmd { return nil }

// Update implements View. Retry is bound at the app level.
func (e *ErrorView) Update(tea.Msg) (View, tea.Cmd) { return e, nil }

// View implements View.
func (e *ErrorView) View() string {
	return Styles.Error.Render("Failed to load") + "\n\n" + Styles.Hint.Render("[r] Retry")
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"amphibians/internal/amphibian"
)

// DetailView shows one amphibian: name, image, type, description.
// Long descriptions scroll.
type DetailView struct {
	Amphibian amphibian.Amphibian
	viewport  viewport.Model
	slot      SlotFunc
}

var _ View = (*DetailView)(nil)

// NewDetailView creates a detail view for a.
func NewDetailView(a amphibian.Amphibian, slot SlotFunc) *DetailView {
	return &DetailView{
		Amphibian: a,
		viewport:  viewport.New(defaultWidth, defaultHeight),
		slot:      slot,
	}
}

// Init implements View.
func (d *DetailView) Init() tea.Cmd { return nil }

// SetSize implements Sizer.
func (d *DetailView) SetSize(width, height int) {
	if width > 0 {
		d.viewport.Width = width
	}
	if height > 0 {
		d.viewport.Height = height
	}
}

// Update implements View.
func (d *DetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	d.viewport.SetContent(d.content())
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View implements View. Content is rebuilt on every render so the image
// slot follows the loader.
func (d *DetailView) View() string {
	d.viewport.SetContent(d.content())
	return d.viewport.View()
}

func (d *DetailView) content() string {
	a := d.Amphibian
	wrap := lipgloss.NewStyle().Width(d.viewport.Width)

	slot := ""
	if d.slot != nil {
		slot = d.slot(a.ImgSrc)
	}

	var b strings.Builder
	b.WriteString(Styles.Heading.Render(a.Name) + "\n")
	b.WriteString(Styles.Image.Render(slot) + "\n\n")
	b.WriteString(Styles.Strong.Render(a.Type) + "\n\n")
	b.WriteString(wrap.Render(a.Description))
	return b.String()
}

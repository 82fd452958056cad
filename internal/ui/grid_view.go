package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"amphibians/internal/amphibian"
	"amphibians/internal/ui/textutil"
)

const (
	gridColumns    = 2
	cardGap        = 1
	cardHeight     = 4 // border + title + image slot
	defaultWidth   = 80
	defaultHeight  = 20
	minCardContent = 8
)

// SlotFunc renders the image slot for a URL.
type SlotFunc func(url string) string

// GridView shows amphibians as cards, two per row. Enter on a card emits the
// message built by onSelect.
type GridView struct {
	Items    []amphibian.Amphibian
	Empty    string // shown instead of cards when Items is empty
	Cursor   int
	offset   int // first visible row
	width    int
	height   int
	slot     SlotFunc
	onSelect func(amphibian.Amphibian) tea.Msg
}

var _ View = (*GridView)(nil)

// NewGridView creates a grid over items.
func NewGridView(items []amphibian.Amphibian, slot SlotFunc, onSelect func(amphibian.Amphibian) tea.Msg) *GridView {
	return &GridView{
		Items:    items,
		slot:     slot,
		onSelect: onSelect,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// Init implements View.
func (g *GridView) Init() tea.Cmd { return nil }

// SetSize implements Sizer.
func (g *GridView) SetSize(width, height int) {
	if width > 0 {
		g.width = width
	}
	if height > 0 {
		g.height = height
	}
	g.scroll()
}

// Update implements View.
func (g *GridView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(g.Items) == 0 {
		return g, nil
	}
	switch km.String() {
	case "up", "k":
		g.move(-gridColumns)
	case "down", "j":
		g.move(gridColumns)
	case "left":
		g.move(-1)
	case "right":
		g.move(1)
	case "home", "g":
		g.Cursor = 0
		g.scroll()
	case "end", "G":
		g.Cursor = len(g.Items) - 1
		g.scroll()
	case "enter":
		if g.onSelect == nil {
			return g, nil
		}
		selected := g.Items[g.Cursor]
		return g, func() tea.Msg { return g.onSelect(selected) }
	}
	return g, nil
}

func (g *GridView) move(delta int) {
	next := g.Cursor + delta
	if next < 0 || next >= len(g.Items) {
		return
	}
	g.Cursor = next
	g.scroll()
}

func (g *GridView) visibleRows() int {
	rows := g.height / cardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// scroll keeps the cursor row on screen.
func (g *GridView) scroll() {
	row := g.Cursor / gridColumns
	visible := g.visibleRows()
	if row < g.offset {
		g.offset = row
	}
	if row >= g.offset+visible {
		g.offset = row - visible + 1
	}
}

// View implements View.
func (g *GridView) View() string {
	if len(g.Items) == 0 {
		return Styles.Empty.Render(g.Empty)
	}

	// Card style adds 2 border columns and 2 padding columns.
	cardWidth := (g.width - cardGap*(gridColumns-1)) / gridColumns
	content := cardWidth - 4
	if content < minCardContent {
		content = minCardContent
	}

	first := g.offset * gridColumns
	last := first + g.visibleRows()*gridColumns
	if last > len(g.Items) {
		last = len(g.Items)
	}

	var rows []string
	for start := first; start < last; start += gridColumns {
		var cards []string
		for i := start; i < start+gridColumns && i < last; i++ {
			if len(cards) > 0 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, g.card(i, content))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (g *GridView) card(i, width int) string {
	a := g.Items[i]
	slot := ""
	if g.slot != nil {
		slot = g.slot(a.ImgSrc)
	}
	body := Styles.CardTitle.Render(textutil.FitLine(a.Title(), width)) + "\n" +
		Styles.Image.Render(textutil.FitLine(slot, width))
	style := Styles.Card
	if i == g.Cursor {
		style = Styles.CardFocus
	}
	return style.Render(body)
}

package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"amphibians/internal/amphibian"
)

// amphibianItem implements list.Item. Only the name is shown.
type amphibianItem struct {
	a amphibian.Amphibian
}

func (i amphibianItem) FilterValue() string { return i.a.Name }
func (i amphibianItem) Title() string       { return i.a.Name }
func (i amphibianItem) Description() string { return "" }

// ListView is the category tab without a selection: every fetched name,
// enter selects one for the category grid.
type ListView struct {
	list   list.Model
	Items  []amphibian.Amphibian
	Header string // drawn above the names when set
}

var _ View = (*ListView)(nil)

// NewListView creates a list over items.
func NewListView(items []amphibian.Amphibian) *ListView {
	l := list.New(nil, NewCompactListDelegate(), defaultWidth, defaultHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	v := &ListView{list: l}
	v.SetItems(items)
	return v
}

// SetItems replaces the list content.
func (v *ListView) SetItems(items []amphibian.Amphibian) {
	v.Items = items
	li := make([]list.Item, len(items))
	for i, a := range items {
		li[i] = amphibianItem{a: a}
	}
	v.list.SetItems(li)
}

// Selected returns the index under the cursor.
func (v *ListView) Selected() int {
	return v.list.Index()
}

// Init implements View.
func (v *ListView) Init() tea.Cmd { return nil }

// SetSize implements Sizer.
func (v *ListView) SetSize(width, height int) {
	if width > 0 {
		v.list.SetWidth(width)
	}
	if v.Header != "" {
		height -= 2
	}
	if height > 0 {
		v.list.SetHeight(height)
	}
}

// Update implements View.
func (v *ListView) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "enter" {
		i := v.list.Index()
		if i < 0 || i >= len(v.Items) {
			return v, nil
		}
		selected := v.Items[i]
		return v, func() tea.Msg { return ShowCategoryMsg{Amphibian: selected} }
	}
	// list.Model handles j/k/up/down/pgup/pgdown natively.
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *ListView) View() string {
	body := v.list.View()
	if len(v.Items) == 0 {
		body = Styles.Empty.Render("No amphibians")
	}
	if v.Header == "" {
		return body
	}
	return Styles.Empty.Render(v.Header) + "\n\n" + body
}

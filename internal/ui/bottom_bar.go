package ui

import (
	"github.com/charmbracelet/lipgloss"

	"amphibians/internal/state"
)

var tabs = []struct {
	tab   state.Tab
	label string
}{
	{state.TabHome, "[h] Home"},
	{state.TabCategory, "[c] Category"},
}

// renderBottomBar draws the tab bar with the active tab highlighted.
func renderBottomBar(active state.Tab) string {
	cells := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := Styles.TabIdle
		if t.tab == active {
			style = Styles.TabActive
		}
		cells = append(cells, style.Render(t.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

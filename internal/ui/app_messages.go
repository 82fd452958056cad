package ui

import (
	"amphibians/internal/amphibian"
	"amphibians/internal/state"
)

// SelectTabMsg switches tabs (h, c, SPC t h, SPC t c). Both selections are cleared.
type SelectTabMsg struct {
	Tab state.Tab
}

// BackMsg undoes the most recent selection (esc, backspace, SPC b).
type BackMsg struct{}

// RetryMsg re-requests the list (r, SPC r). Ignored unless the error screen is showing.
type RetryMsg struct{}

// ShowDetailMsg is sent when a grid card is chosen.
type ShowDetailMsg struct {
	Amphibian amphibian.Amphibian
}

// ShowCategoryMsg is sent when a name is chosen in the category list.
type ShowCategoryMsg struct {
	Amphibian amphibian.Amphibian
}

// Package nav decides which screen to render from a state snapshot.
//
// Select evaluates an ordered list of guarded rules; the first match wins.
// The order matters because the home-tab rule and the detail-selection rule
// can both hold at once.
package nav

import (
	"amphibians/internal/amphibian"
	"amphibians/internal/state"
)

const (
	// HomeGridRepeat is how many times the home grid concatenates the list.
	HomeGridRepeat = 3
	// CategoryGridSize is the number of copies of the selected entity shown
	// in the category grid.
	CategoryGridSize = 20
	// NoSelectionMessage is rendered by the category grid without an entity.
	NoSelectionMessage = "No amphibian selected"
)

// State names a node of the navigation state machine.
type State string

const (
	HomeLoading    State = "Home-Loading"
	HomeSuccess    State = "Home-Success"
	HomeError      State = "Home-Error"
	HomeDetail     State = "Home-Detail"
	CategoryEmpty  State = "Category-Empty"
	CategoryDetail State = "Category-Detail"
	CategoryGrid   State = "Category-Grid"
)

// Kind is the concrete view to draw.
type Kind int

const (
	KindLoading Kind = iota
	KindError
	KindHomeGrid     // card grid of the fetched list, repeated
	KindList         // flat list of names
	KindCategoryGrid // card grid of one repeated entity
	KindDetail
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "Loading"
	case KindError:
		return "Error"
	case KindHomeGrid:
		return "HomeGrid"
	case KindList:
		return "List"
	case KindCategoryGrid:
		return "CategoryGrid"
	case KindDetail:
		return "Detail"
	default:
		return "Unknown"
	}
}

// Screen is the result of Select.
type Screen struct {
	State      State
	Kind       Kind
	Tab        state.Tab
	Amphibians []amphibian.Amphibian // items for grid and list kinds
	Amphibian  *amphibian.Amphibian  // entity for KindDetail
	Message    string                // header text; NoSelectionMessage on Category-Empty
	Rule       string                // name of the matching rule, for logs
}

// ShowTopBar reports whether the title bar is drawn; detail screens hide it.
func (s Screen) ShowTopBar() bool {
	return s.Kind != KindDetail
}

type rule struct {
	name   string
	when   func(state.Snapshot) bool
	render func(state.Snapshot) Screen
}

// rules is evaluated top to bottom.
var rules = []rule{
	{
		name:   "home tab",
		when:   func(s state.Snapshot) bool { return s.Tab == state.TabHome },
		render: home,
	},
	{
		name: "detail selected",
		when: func(s state.Snapshot) bool { return s.Detail != nil },
		render: func(s state.Snapshot) Screen {
			return Screen{State: CategoryDetail, Kind: KindDetail, Tab: s.Tab, Amphibian: s.Detail}
		},
	},
	{
		name: "category selected",
		when: func(s state.Snapshot) bool { return s.Category != nil },
		render: func(s state.Snapshot) Screen {
			return Screen{State: CategoryGrid, Kind: KindCategoryGrid, Tab: s.Tab, Amphibians: CategoryItems(s.Category)}
		},
	},
	{
		name:   "plain list",
		when:   func(state.Snapshot) bool { return true },
		render: plainList,
	},
}

// Select maps a snapshot to the screen to render.
func Select(s state.Snapshot) Screen {
	for _, r := range rules {
		if r.when(s) {
			sc := r.render(s)
			sc.Rule = r.name
			return sc
		}
	}
	// unreachable: the last rule always matches
	return plainList(s)
}

func home(s state.Snapshot) Screen {
	if s.Detail != nil {
		return Screen{State: HomeDetail, Kind: KindDetail, Tab: s.Tab, Amphibian: s.Detail}
	}
	switch st := s.Status.(type) {
	case state.Loading:
		return Screen{State: HomeLoading, Kind: KindLoading, Tab: s.Tab}
	case state.Success:
		return Screen{State: HomeSuccess, Kind: KindHomeGrid, Tab: s.Tab, Amphibians: HomeItems(st.Amphibians)}
	default:
		return Screen{State: HomeError, Kind: KindError, Tab: s.Tab}
	}
}

func plainList(s state.Snapshot) Screen {
	sc := Screen{State: CategoryEmpty, Tab: s.Tab, Message: CategoryMessage(s.Category)}
	switch st := s.Status.(type) {
	case state.Success:
		sc.Kind = KindList
		sc.Amphibians = st.Amphibians
	case state.Loading:
		sc.Kind = KindLoading
	default:
		sc.Kind = KindError
	}
	return sc
}

// HomeItems is the home grid content: the list concatenated HomeGridRepeat times.
func HomeItems(list []amphibian.Amphibian) []amphibian.Amphibian {
	return amphibian.Concat(list, HomeGridRepeat)
}

// CategoryItems is the category grid content: CategoryGridSize copies of
// selected, or nil without a selection.
func CategoryItems(selected *amphibian.Amphibian) []amphibian.Amphibian {
	if selected == nil {
		return nil
	}
	return amphibian.Repeat(*selected, CategoryGridSize)
}

// CategoryMessage returns the category tab notice: NoSelectionMessage when
// selected is nil, empty otherwise.
func CategoryMessage(selected *amphibian.Amphibian) string {
	if selected == nil {
		return NoSelectionMessage
	}
	return ""
}

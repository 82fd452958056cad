package ui

import (
	"context"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"amphibians/internal/amphibian"
	"amphibians/internal/images"
	"amphibians/internal/nav"
	"amphibians/internal/state"
)

// AppModel is the root model. It forwards store mutations from messages and
// swaps the current View whenever nav.Select picks a different screen.
type AppModel struct {
	Store      *state.Store
	Images     *images.Tracker
	KeyHandler *KeyHandler
	Screen     nav.Screen
	Current    View
	Toast      string // last recovered failure, cleared on the next key

	ctx    context.Context
	log    zerolog.Logger
	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model. ctx bounds every fetch and image load
// started from the UI.
func NewAppModel(ctx context.Context, store *state.Store, tracker *images.Tracker, log zerolog.Logger) *AppModel {
	if tracker == nil {
		tracker = images.NewTracker(nil)
	}
	return &AppModel{
		Store:      store,
		Images:     tracker,
		KeyHandler: NewKeyHandler(defaultKeybinds()),
		ctx:        ctx,
		log:        log,
	}
}

func defaultKeybinds() *KeybindRegistry {
	home := func() tea.Msg { return SelectTabMsg{Tab: state.TabHome} }
	category := func() tea.Msg { return SelectTabMsg{Tab: state.TabCategory} }
	back := func() tea.Msg { return BackMsg{} }
	retry := func() tea.Msg { return RetryMsg{} }

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("h", home, "Home")
	reg.BindWithDesc("c", category, "Category")
	reg.BindWithDesc("SPC t h", home, "Home")
	reg.BindWithDesc("SPC t c", category, "Category")
	reg.BindWithDesc("backspace", back, "Back")
	reg.BindWithDescForKinds("SPC b", back, "Back",
		[]nav.Kind{nav.KindDetail, nav.KindCategoryGrid})
	reg.BindWithDescForKinds("r", retry, "Retry", []nav.Kind{nav.KindError})
	reg.BindWithDescForKinds("SPC r", retry, "Retry", []nav.Kind{nav.KindError})
	return reg
}

// AsTeaModel returns a tea.Model for use with tea.NewProgram. Panics in
// Update and View are recovered and logged.
func (m *AppModel) AsTeaModel() tea.Model {
	return wrapSafe(&appModelAdapter{AppModel: m}, m.log)
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Store.Init(), a.refresh())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resize()
		return a, nil
	case state.LoadedMsg:
		a.Store.Apply(msg)
		return a, a.refresh()
	case images.LoadedMsg:
		a.Images.Apply(msg)
		return a, nil
	case SelectTabMsg:
		a.Store.SelectTab(msg.Tab)
		return a, a.refresh()
	case BackMsg:
		a.Store.Back()
		return a, a.refresh()
	case RetryMsg:
		if a.Screen.Kind != nav.KindError {
			return a, nil
		}
		load := a.Store.RequestLoad(a.ctx)
		return a, tea.Batch(load, a.refresh())
	case ShowDetailMsg:
		a.Store.SelectDetailAmphibian(&msg.Amphibian)
		return a, a.refresh()
	case ShowCategoryMsg:
		a.Store.SelectCategoryAmphibian(&msg.Amphibian)
		return a, a.refresh()
	case tea.KeyMsg:
		a.Toast = ""
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		if msg.String() == "esc" {
			return a, func() tea.Msg { return BackMsg{} }
		}
	}

	if a.Current == nil {
		return a, nil
	}
	v, cmd := a.Current.Update(msg)
	a.Current = v
	return a, cmd
}

// refresh re-runs the selector. The current view is kept when the screen
// did not change so cursors survive unrelated messages.
func (a *AppModel) refresh() tea.Cmd {
	next := nav.Select(a.Store.Snapshot())
	if a.Current != nil && sameScreen(a.Screen, next) {
		a.Screen = next
		return nil
	}
	a.log.Debug().
		Str("rule", next.Rule).
		Str("state", string(next.State)).
		Stringer("kind", next.Kind).
		Int("items", len(next.Amphibians)).
		Msg("screen")
	a.Screen = next
	a.Current = a.newView(next)
	a.resize()
	return tea.Batch(a.Current.Init(), a.Images.RequestAll(a.ctx, imageURLs(next)))
}

func (a *AppModel) newView(s nav.Screen) View {
	switch s.Kind {
	case nav.KindLoading:
		return NewLoadingView()
	case nav.KindError:
		return NewErrorView()
	case nav.KindHomeGrid:
		g := NewGridView(s.Amphibians, a.Images.Slot, showDetail)
		g.Empty = "No amphibians"
		return g
	case nav.KindCategoryGrid:
		g := NewGridView(s.Amphibians, a.Images.Slot, showDetail)
		var selected *amphibian.Amphibian
		if len(s.Amphibians) > 0 {
			selected = &s.Amphibians[0]
		}
		g.Empty = nav.CategoryMessage(selected)
		return g
	case nav.KindList:
		l := NewListView(s.Amphibians)
		l.Header = s.Message
		return l
	case nav.KindDetail:
		var entity amphibian.Amphibian
		if s.Amphibian != nil {
			entity = *s.Amphibian
		}
		return NewDetailView(entity, a.Images.Slot)
	default:
		return NewErrorView()
	}
}

func showDetail(a amphibian.Amphibian) tea.Msg {
	return ShowDetailMsg{Amphibian: a}
}

// resize gives the body whatever the bars leave over.
func (a *AppModel) resize() {
	sz, ok := a.Current.(Sizer)
	if !ok || a.width == 0 {
		return
	}
	h := a.height - lipgloss.Height(a.bottomBar()) - 1
	if a.Screen.ShowTopBar() {
		h -= lipgloss.Height(a.topBar())
	}
	sz.SetSize(a.width, h)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var sections []string
	if a.Screen.ShowTopBar() {
		sections = append(sections, a.topBar())
	}
	if a.Current != nil {
		sections = append(sections, a.Current.View())
	}
	if a.Toast != "" {
		sections = append(sections, Styles.Toast.Render(a.Toast))
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		sections = append(sections, RenderKeybindHelp(a.KeyHandler, a.Screen.Kind))
	}
	sections = append(sections, "", a.bottomBar())
	return strings.Join(sections, "\n")
}

func (a *AppModel) topBar() string {
	return Styles.TopBar.Render(Styles.Title.Render("Amphibians"))
}

func (a *AppModel) bottomBar() string {
	return renderBottomBar(a.Screen.Tab)
}

func sameScreen(x, y nav.Screen) bool {
	if x.State != y.State || x.Kind != y.Kind || x.Tab != y.Tab || x.Message != y.Message {
		return false
	}
	if (x.Amphibian == nil) != (y.Amphibian == nil) {
		return false
	}
	if x.Amphibian != nil && *x.Amphibian != *y.Amphibian {
		return false
	}
	return slices.Equal(x.Amphibians, y.Amphibians)
}

func imageURLs(s nav.Screen) []string {
	if s.Kind == nav.KindDetail && s.Amphibian != nil {
		return []string{s.Amphibian.ImgSrc}
	}
	if s.Kind != nav.KindHomeGrid && s.Kind != nav.KindCategoryGrid {
		return nil
	}
	urls := make([]string, 0, len(s.Amphibians))
	seen := make(map[string]bool)
	for _, am := range s.Amphibians {
		if am.ImgSrc == "" || seen[am.ImgSrc] {
			continue
		}
		seen[am.ImgSrc] = true
		urls = append(urls, am.ImgSrc)
	}
	return urls
}

package state

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"amphibians/internal/amphibian"
	"amphibians/internal/data"
)

// LoadedMsg carries a completed fetch back to the store.
// Seq identifies the request that produced it.
type LoadedMsg struct {
	Seq        uint64
	Amphibians []amphibian.Amphibian
	Err        error
}

// Snapshot is an immutable copy of the store, the input to nav.Select.
type Snapshot struct {
	Tab      Tab
	Status   Status
	Category *amphibian.Amphibian
	Detail   *amphibian.Amphibian
}

// Store is the single UI state instance. It must only be mutated from the
// UI loop (Bubble Tea Update); fetches run in commands and report back
// through LoadedMsg.
//
// Concurrent loads are not deduplicated and results are never discarded:
// whichever fetch completes last decides the status.
type Store struct {
	repo data.Repository
	log  zerolog.Logger

	status   Status
	tab      Tab
	category *amphibian.Amphibian
	detail   *amphibian.Amphibian

	seq     uint64
	initial tea.Cmd
}

// NewStore creates a store on the home tab and immediately requests the
// first load. The resulting command is handed out once by Init.
func NewStore(ctx context.Context, repo data.Repository, log zerolog.Logger) *Store {
	s := &Store{
		repo: repo,
		log:  log,
		tab:  TabHome,
	}
	s.initial = s.RequestLoad(ctx)
	return s
}

// Init returns the eager initial load command the first time it is called,
// nil afterwards.
func (s *Store) Init() tea.Cmd {
	cmd := s.initial
	s.initial = nil
	return cmd
}

// RequestLoad sets the status to Loading and returns the command that
// performs the fetch.
func (s *Store) RequestLoad(ctx context.Context) tea.Cmd {
	s.seq++
	seq := s.seq
	s.status = Loading{}
	s.log.Debug().Uint64("seq", seq).Msg("load requested")

	repo := s.repo
	return func() tea.Msg {
		list, err := repo.GetAmphibians(ctx)
		return LoadedMsg{Seq: seq, Amphibians: list, Err: err}
	}
}

// Apply writes a fetch result. Every failure becomes Error; success replaces
// the list wholesale.
func (s *Store) Apply(msg LoadedMsg) {
	ev := s.log.Debug()
	if msg.Seq != s.seq {
		ev = s.log.Info().Uint64("latest_seq", s.seq)
	}
	ev = ev.Uint64("seq", msg.Seq)

	if msg.Err != nil {
		s.status = Error{Err: msg.Err}
		ev.Err(msg.Err).Msg("load failed")
		return
	}
	list := msg.Amphibians
	if list == nil {
		list = []amphibian.Amphibian{}
	}
	s.status = Success{Amphibians: list}
	ev.Int("count", len(list)).Msg("load applied")
}

// Status returns the current load status.
func (s *Store) Status() Status { return s.status }

// Tab returns the active tab.
func (s *Store) Tab() Tab { return s.tab }

// SelectedCategory returns the category selection, or nil.
func (s *Store) SelectedCategory() *amphibian.Amphibian { return s.category }

// SelectedDetail returns the detail selection, or nil.
func (s *Store) SelectedDetail() *amphibian.Amphibian { return s.detail }

// SelectCategoryAmphibian sets or (with nil) clears the category selection.
func (s *Store) SelectCategoryAmphibian(a *amphibian.Amphibian) {
	s.category = clone(a)
}

// SelectDetailAmphibian sets or (with nil) clears the detail selection.
func (s *Store) SelectDetailAmphibian(a *amphibian.Amphibian) {
	s.detail = clone(a)
}

// ClearAll clears both selections.
func (s *Store) ClearAll() {
	s.category = nil
	s.detail = nil
}

// SelectTab switches tabs. Both bottom-bar buttons reset the selections.
func (s *Store) SelectTab(t Tab) {
	s.ClearAll()
	s.tab = t
}

// Back clears one level of selection: the detail first, then the category.
// It reports whether anything was cleared.
func (s *Store) Back() bool {
	switch {
	case s.detail != nil:
		s.detail = nil
		return true
	case s.category != nil:
		s.category = nil
		return true
	}
	return false
}

// Snapshot copies the current state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Tab:      s.tab,
		Status:   s.status,
		Category: clone(s.category),
		Detail:   clone(s.detail),
	}
}

func clone(a *amphibian.Amphibian) *amphibian.Amphibian {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// Package ui renders the amphibians browser with Bubble Tea.
//
// The App owns the state store and re-runs nav.Select after every message;
// the selected screen decides which View is active:
//   - GridView: card grid (home list, category placeholder grid)
//   - ListView: flat list of names (category tab without a selection)
//   - DetailView: one amphibian, scrollable
//   - LoadingView / ErrorView: fetch in progress / failed with retry
//
// Key input goes through a leader-key KeybindRegistry before reaching views.
package ui

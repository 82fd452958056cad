// Package state holds the UI state store: the load status of the amphibian
// list, the active tab and the two selection references.
package state

import "amphibians/internal/amphibian"

// Status is the load status of the amphibian list.
// Exactly one of Loading, Success or Error.
type Status interface {
	status()
	String() string
}

// Loading means a fetch has been requested and no result applied since.
type Loading struct{}

// Success holds the records from the last completed fetch, in received order.
type Success struct {
	Amphibians []amphibian.Amphibian
}

// Error means the last completed fetch failed. Err is kept for logging;
// the UI shows the same message for every cause.
type Error struct {
	Err error
}

func (Loading) status() {}
func (Success) status() {}
func (Error) status()   {}

func (Loading) String() string { return "Loading" }
func (Success) String() string { return "Success" }
func (Error) String() string   { return "Error" }

// Tab is the bottom-bar destination.
type Tab int

const (
	TabHome Tab = iota
	TabCategory
)

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabCategory:
		return "Category"
	default:
		return "Unknown"
	}
}

// Package amphibian defines the record fetched from the amphibians endpoint.
package amphibian

import "fmt"

// Amphibian is a single record as served by the remote endpoint.
// Field names round-trip unchanged through JSON.
// Records are compared by value; Name is used as the display key.
type Amphibian struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	ImgSrc      string `json:"imgSrc"`
}

// Title returns the card heading, e.g. "Great Basin Spadefoot (Toad)".
func (a Amphibian) Title() string {
	return fmt.Sprintf("%s (%s)", a.Name, a.Type)
}

// Repeat returns n copies of a.
func Repeat(a Amphibian, n int) []Amphibian {
	if n <= 0 {
		return nil
	}
	out := make([]Amphibian, n)
	for i := range out {
		out[i] = a
	}
	return out
}

// Concat returns list appended to itself times times, preserving order.
func Concat(list []Amphibian, times int) []Amphibian {
	if times <= 0 || len(list) == 0 {
		return nil
	}
	out := make([]Amphibian, 0, len(list)*times)
	for i := 0; i < times; i++ {
		out = append(out, list...)
	}
	return out
}

// DuplicateNames returns names that appear more than once, in first-seen order.
// Duplicate names make list keys ambiguous; callers log them.
func DuplicateNames(list []Amphibian) []string {
	seen := make(map[string]int, len(list))
	var dups []string
	for _, a := range list {
		seen[a.Name]++
		if seen[a.Name] == 2 {
			dups = append(dups, a.Name)
		}
	}
	return dups
}

// Package selection models the map-side place picking flow: a click on
// the map opens a disambiguation panel listing nearby candidates, and
// choosing one yields the place identifier the rest of the app works
// with.
package selection

import (
	"errors"
	"fmt"
)

type State int

const (
	// StateIdle: nothing selected, no panel shown.
	StateIdle State = iota
	// StateDisambiguating: candidate panel open, waiting for a choice.
	StateDisambiguating
	// StatePlaceSelected: a candidate was chosen and its id emitted.
	StatePlaceSelected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDisambiguating:
		return "disambiguating"
	case StatePlaceSelected:
		return "place-selected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrNoCandidates  = errors.New("selection: no candidates to show")
	ErrNotChoosing   = errors.New("selection: no disambiguation in progress")
	ErrBadCandidate  = errors.New("selection: candidate index out of range")
	ErrNothingChosen = errors.New("selection: nothing selected")
)

// Candidate is one nearby result from the places directory.
type Candidate struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity"`
	Types    []string `json:"types,omitempty"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
}

// maxShortlist caps the disambiguation panel.
const maxShortlist = 5

// preferredTypes are the directory categories worth reviewing; other
// hits (bus stops, routes) only appear when nothing better is nearby.
var preferredTypes = map[string]bool{
	"museum":            true,
	"establishment":     true,
	"point_of_interest": true,
}

// Shortlist filters nearby results down to the candidates the panel
// offers: preferred place types first, everything as fallback, at most
// five entries.
func Shortlist(candidates []Candidate) []Candidate {
	var filtered []Candidate
	for _, c := range candidates {
		for _, t := range c.Types {
			if preferredTypes[t] {
				filtered = append(filtered, c)
				break
			}
		}
	}

	if len(filtered) == 0 {
		filtered = candidates
	}
	if len(filtered) > maxShortlist {
		filtered = filtered[:maxShortlist]
	}
	return filtered
}

// Flow is the explicit selection state machine. It is not safe for
// concurrent use; each UI session owns one.
type Flow struct {
	state      State
	candidates []Candidate
	selected   string
}

func NewFlow() *Flow {
	return &Flow{state: StateIdle}
}

func (f *Flow) State() State { return f.state }

// Candidates returns the shortlist currently offered, nil outside of
// disambiguation.
func (f *Flow) Candidates() []Candidate {
	if f.state != StateDisambiguating {
		return nil
	}
	return f.candidates
}

// MapClick handles a click anywhere on the map: any open panel is
// replaced by a fresh shortlist built from the new nearby results.
func (f *Flow) MapClick(nearby []Candidate) error {
	shortlist := Shortlist(nearby)
	if len(shortlist) == 0 {
		f.reset()
		return ErrNoCandidates
	}

	f.state = StateDisambiguating
	f.candidates = shortlist
	f.selected = ""
	return nil
}

// Choose picks a candidate from the panel and emits its place id.
func (f *Flow) Choose(index int) (string, error) {
	if f.state != StateDisambiguating {
		return "", ErrNotChoosing
	}
	if index < 0 || index >= len(f.candidates) {
		return "", ErrBadCandidate
	}

	f.selected = f.candidates[index].PlaceID
	f.state = StatePlaceSelected
	f.candidates = nil
	return f.selected, nil
}

// Cancel covers both the explicit cancel action and a click outside
// the panel: the panel closes and nothing is emitted.
func (f *Flow) Cancel() {
	if f.state == StateDisambiguating {
		f.reset()
	}
}

// Close dismisses the selected place and returns to idle.
func (f *Flow) Close() {
	if f.state == StatePlaceSelected {
		f.reset()
	}
}

// Selected returns the emitted place id while one is active.
func (f *Flow) Selected() (string, error) {
	if f.state != StatePlaceSelected {
		return "", ErrNothingChosen
	}
	return f.selected, nil
}

func (f *Flow) reset() {
	f.state = StateIdle
	f.candidates = nil
	f.selected = ""
}

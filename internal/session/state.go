// Package session tracks progress through a deck. Every transition takes a
// State by value and returns a new one; the memorized set is copied rather
// than shared so earlier states stay valid.
package session

import (
	"sort"

	"github.com/kpauljoseph/datealingo/internal/deck"
	"github.com/kpauljoseph/datealingo/pkg/models"
)

type State struct {
	Seed          uint32
	Cursor        int
	Memorized     map[string]struct{}
	HideMemorized bool
}

// New is the state of a freshly imported deck.
func New(seed uint32) State {
	return State{
		Seed:          seed,
		Memorized:     map[string]struct{}{},
		HideMemorized: true,
	}
}

func (s State) IsMemorized(id string) bool {
	_, ok := s.Memorized[id]
	return ok
}

// MemorizedIDs returns the memorized set as a sorted slice.
func (s State) MemorizedIDs() []string {
	ids := make([]string, 0, len(s.Memorized))
	for id := range s.Memorized {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s State) withMemorized(ids map[string]struct{}) State {
	next := make(map[string]struct{}, len(ids)+1)
	for id := range ids {
		next[id] = struct{}{}
	}
	s.Memorized = next
	return s
}

func Active(s State, cards []models.VocabCard) []models.VocabCard {
	return deck.ActiveOrder(cards, s.Seed, s.Memorized, s.HideMemorized)
}

// ClampCursor keeps the cursor inside the active order. It must run after
// anything that can shrink or reorder that order.
func ClampCursor(s State, cards []models.VocabCard) State {
	active := Active(s, cards)
	if len(active) == 0 {
		s.Cursor = 0
		return s
	}
	s.Cursor = wrap(s.Cursor, len(active))
	return s
}

func Advance(s State, cards []models.VocabCard) State {
	active := Active(s, cards)
	if len(active) == 0 {
		s.Cursor = 0
		return s
	}
	s.Cursor = wrap(wrap(s.Cursor, len(active))+1, len(active))
	return s
}

func MarkMemorized(s State, id string, cards []models.VocabCard) State {
	s = s.withMemorized(s.Memorized)
	s.Memorized[id] = struct{}{}
	return ClampCursor(s, cards)
}

func ResetMemorized(s State) State {
	s.Cursor = 0
	s.Memorized = map[string]struct{}{}
	return s
}

func Reshuffle(s State, seed uint32) State {
	s = s.withMemorized(s.Memorized)
	s.Seed = seed
	s.Cursor = 0
	return s
}

// Restart replays the same order from the top.
func Restart(s State, cards []models.VocabCard) State {
	s = s.withMemorized(s.Memorized)
	s.Cursor = 0
	return ClampCursor(s, cards)
}

func SetHideMemorized(s State, hide bool, cards []models.VocabCard) State {
	s = s.withMemorized(s.Memorized)
	s.HideMemorized = hide
	return ClampCursor(s, cards)
}

// wrap also repairs negative cursors from hand-edited or corrupt storage.
func wrap(cursor, n int) int {
	cursor %= n
	if cursor < 0 {
		cursor += n
	}
	return cursor
}

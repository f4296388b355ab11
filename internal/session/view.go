package session

import "github.com/kpauljoseph/datealingo/pkg/models"

type Swipe int

const (
	// SwipeKeep leaves the card in the deck and moves on.
	SwipeKeep Swipe = iota
	// SwipeKnown marks the card memorized.
	SwipeKnown
)

func (s Swipe) String() string {
	switch s {
	case SwipeKeep:
		return "keep"
	case SwipeKnown:
		return "known"
	}
	return "unknown"
}

// Current returns the card under the cursor, or false when the deck is done.
func Current(s State, cards []models.VocabCard) (models.VocabCard, bool) {
	active := Active(s, cards)
	if len(active) == 0 {
		return models.VocabCard{}, false
	}
	return active[wrap(s.Cursor, len(active))], true
}

// Next returns the card after the current one. With one card or fewer active
// there is no next card.
func Next(s State, cards []models.VocabCard) (models.VocabCard, bool) {
	active := Active(s, cards)
	if len(active) <= 1 {
		return models.VocabCard{}, false
	}
	return active[wrap(s.Cursor+1, len(active))], true
}

func Done(s State, cards []models.VocabCard) bool {
	return len(Active(s, cards)) == 0
}

// Progress reports memorized cards against the deck size.
func Progress(s State, cards []models.VocabCard) (memorized, total int) {
	return len(s.Memorized), len(cards)
}

// ApplySwipe handles a swipe on the current card. Marking a card known moves
// on only when memorized cards stay visible; otherwise the card drops out and
// the cursor already points at its successor.
func ApplySwipe(s State, cards []models.VocabCard, swipe Swipe) State {
	current, ok := Current(s, cards)
	if !ok {
		return s
	}

	if swipe == SwipeKeep {
		return Advance(s, cards)
	}

	marked := MarkMemorized(s, current.ID, cards)
	if !marked.HideMemorized {
		return Advance(marked, cards)
	}
	return marked
}

// Package deck produces the study order of a vocabulary deck. The order is a
// seeded shuffle that must match across platforms, so the generator is
// implemented with explicit 32-bit wraparound arithmetic.
package deck

import (
	"time"

	"github.com/kpauljoseph/datealingo/pkg/models"
)

const (
	MaxSeed = 2147483647

	mulberryIncrement = 0x6D2B79F5
	twoPow32          = 4294967296.0
)

var now = time.Now

// GenerateSeed derives a seed from the wall clock. It is always below 2^31.
func GenerateSeed() uint32 {
	return uint32(now().UnixMilli() % MaxSeed)
}

// Mulberry32 returns a generator of floats in [0, 1).
func Mulberry32(seed uint32) func() float64 {
	t := seed
	return func() float64 {
		t += mulberryIncrement
		v := (t ^ t>>15) * (1 | t)
		v ^= v + (v^v>>7)*(61|v)
		return float64(v^v>>14) / twoPow32
	}
}

// ShuffleWithSeed returns a shuffled copy of items. The input is not modified.
func ShuffleWithSeed[T any](items []T, seed uint32) []T {
	rng := Mulberry32(seed)
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(rng() * float64(i+1))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// ActiveOrder is the shuffled deck, without memorized cards when hide is set.
func ActiveOrder(cards []models.VocabCard, seed uint32, memorized map[string]struct{}, hide bool) []models.VocabCard {
	shuffled := ShuffleWithSeed(cards, seed)
	if !hide {
		return shuffled
	}

	active := shuffled[:0]
	for _, card := range shuffled {
		if _, done := memorized[card.ID]; !done {
			active = append(active, card)
		}
	}
	return active
}

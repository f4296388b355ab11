package session_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/datealingo/internal/session"
	"github.com/kpauljoseph/datealingo/pkg/models"
)

var cards = []models.VocabCard{
	{ID: "1", JP: "水", Hira: "みず", EN: "water", Example: "水を飲みます。", Translation: "I drink water."},
	{ID: "2", JP: "火", Hira: "ひ", EN: "fire", Example: "火を見ます。", Translation: "I see fire."},
	{ID: "3", JP: "木", Hira: "き", EN: "tree", Example: "木を見ます。", Translation: "I see a tree."},
}

func activeIDs(state session.State) []string {
	var ids []string
	for _, c := range session.Active(state, cards) {
		ids = append(ids, c.ID)
	}
	return ids
}

var _ = Describe("Session transitions", func() {
	It("starts at the top with memorized cards hidden", func() {
		state := session.New(42)

		Expect(state.Seed).To(Equal(uint32(42)))
		Expect(state.Cursor).To(Equal(0))
		Expect(state.Memorized).To(BeEmpty())
		Expect(state.HideMemorized).To(BeTrue())
		Expect(activeIDs(state)).To(Equal([]string{"3", "1", "2"}))
	})

	It("drops memorized cards from the active order", func() {
		state := session.New(42)
		first := session.Active(state, cards)[0].ID

		state = session.MarkMemorized(state, first, cards)

		Expect(activeIDs(state)).To(HaveLen(2))
		Expect(activeIDs(state)).NotTo(ContainElement(first))
	})

	It("keeps memorized cards in the active order when not hiding", func() {
		state := session.SetHideMemorized(session.New(42), false, cards)
		first := session.Active(state, cards)[0].ID

		state = session.MarkMemorized(state, first, cards)

		Expect(activeIDs(state)).To(HaveLen(3))
		Expect(activeIDs(state)).To(ContainElement(first))
		Expect(state.IsMemorized(first)).To(BeTrue())
	})

	It("wraps the cursor when advancing past the end", func() {
		state := session.New(42)

		state = session.Advance(state, cards)
		Expect(state.Cursor).To(Equal(1))
		state = session.Advance(state, cards)
		state = session.Advance(state, cards)

		Expect(state.Cursor).To(Equal(0))
	})

	It("keeps the cursor valid while the active deck shrinks", func() {
		state := session.New(42)

		for i := 0; i < len(cards); i++ {
			active := session.Active(state, cards)
			state = session.MarkMemorized(state, active[state.Cursor].ID, cards)
			if n := len(session.Active(state, cards)); n > 0 {
				Expect(state.Cursor).To(BeNumerically("<", n))
			}
		}

		Expect(session.Active(state, cards)).To(BeEmpty())
		Expect(state.Cursor).To(Equal(0))
		Expect(session.Done(state, cards)).To(BeTrue())
	})

	It("ends with an empty view and cursor 0 for any seed once every card is memorized", func() {
		for seed := uint32(0); seed < 50; seed++ {
			state := session.Advance(session.Advance(session.New(seed), cards), cards)
			for _, c := range cards {
				state = session.MarkMemorized(state, c.ID, cards)
			}
			Expect(session.Active(state, cards)).To(BeEmpty(), "seed %d", seed)
			Expect(state.Cursor).To(Equal(0), "seed %d", seed)
		}
	})

	It("keeps restart, reshuffle, and reset stable", func() {
		state := session.New(7)
		firstOrder := activeIDs(state)
		Expect(firstOrder).To(Equal([]string{"2", "3", "1"}))

		state = session.Advance(state, cards)
		state = session.MarkMemorized(state, firstOrder[0], cards)
		Expect(state.Cursor).To(Equal(1))

		state = session.Restart(state, cards)
		Expect(state.Cursor).To(Equal(0))
		Expect(state.Seed).To(Equal(uint32(7)))
		Expect(state.IsMemorized("2")).To(BeTrue())

		state = session.Reshuffle(state, 99)
		Expect(state.Cursor).To(Equal(0))
		Expect(state.Seed).To(Equal(uint32(99)))
		Expect(state.IsMemorized("2")).To(BeTrue())
		Expect(activeIDs(state)).NotTo(Equal(firstOrder))

		state = session.ResetMemorized(state)
		Expect(state.Memorized).To(BeEmpty())
		Expect(state.Cursor).To(Equal(0))
		Expect(state.Seed).To(Equal(uint32(99)))
	})

	DescribeTable("ClampCursor",
		func(cursor, expected int) {
			state := session.New(42)
			state.Cursor = cursor

			Expect(session.ClampCursor(state, cards).Cursor).To(Equal(expected))
		},
		Entry("in range", 2, 2),
		Entry("one past the end", 3, 0),
		Entry("far past the end", 7, 1),
		Entry("negative", -1, 2),
	)

	It("clamps against an empty deck", func() {
		state := session.New(42)
		state.Cursor = 5

		Expect(session.ClampCursor(state, nil).Cursor).To(Equal(0))
		Expect(session.Advance(state, nil).Cursor).To(Equal(0))
	})

	It("clamps when hiding memorized cards shrinks the view", func() {
		state := session.SetHideMemorized(session.New(42), false, cards)
		state = session.MarkMemorized(state, "1", cards)
		state = session.MarkMemorized(state, "2", cards)
		state.Cursor = 2

		state = session.SetHideMemorized(state, true, cards)

		Expect(activeIDs(state)).To(Equal([]string{"3"}))
		Expect(state.Cursor).To(Equal(0))
	})

	It("never mutates the state it was given", func() {
		original := session.New(42)

		marked := session.MarkMemorized(original, "1", cards)
		reshuffled := session.Reshuffle(marked, 5)
		reshuffled.Memorized["3"] = struct{}{}

		Expect(original.Memorized).To(BeEmpty())
		Expect(marked.Memorized).To(HaveLen(1))
		Expect(marked.Seed).To(Equal(uint32(42)))
	})

	It("lists memorized ids", func() {
		state := session.MarkMemorized(session.New(42), "1", cards)
		state = session.MarkMemorized(state, "3", cards)

		Expect(state.MemorizedIDs()).To(ConsistOf("1", "3"))
	})
})

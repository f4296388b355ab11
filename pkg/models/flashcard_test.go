package models_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/datealingo/pkg/models"
)

var _ = Describe("Vocab Models", func() {
	card := models.VocabCard{
		ID:          "1",
		JP:          "猫",
		Hira:        "ねこ",
		EN:          "cat",
		Example:     "猫が好きです",
		Translation: "I like cats",
		Romaji:      models.Optional("neko"),
	}

	Context("VocabCard", func() {
		It("should show the Japanese side first in jp mode", func() {
			Expect(card.Front(models.FrontJP)).To(Equal("猫"))
			Expect(card.Back(models.FrontJP)).To(Equal("cat"))
		})

		It("should show the English side first in en mode", func() {
			Expect(card.Front(models.FrontEN)).To(Equal("cat"))
			Expect(card.Back(models.FrontEN)).To(Equal("猫 (ねこ)"))
		})

		It("should omit absent optional fields from JSON", func() {
			data, err := json.Marshal(card)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring(`"romaji":"neko"`))
			Expect(string(data)).NotTo(ContainSubstring(`"zh":`))
			Expect(string(data)).NotTo(ContainSubstring(`"cat":`))
		})
	})

	Context("Optional", func() {
		It("should return nil for empty strings", func() {
			Expect(models.Optional("")).To(BeNil())
			Expect(models.Deref(nil)).To(BeEmpty())
		})

		It("should keep non-empty values", func() {
			Expect(models.Deref(models.Optional("noun"))).To(Equal("noun"))
		})
	})

	Context("FrontMode", func() {
		DescribeTable("ParseFrontMode",
			func(value string, valid bool) {
				mode, ok := models.ParseFrontMode(value)
				Expect(ok).To(Equal(valid))
				if valid {
					Expect(string(mode)).To(Equal(value))
				}
			},
			Entry("jp", "jp", true),
			Entry("en", "en", true),
			Entry("upper case", "JP", false),
			Entry("empty", "", false),
			Entry("other language", "zh", false),
		)
	})

	Context("RowError", func() {
		It("should format the row and message", func() {
			err := models.RowError{Row: 2, Message: "id is required"}
			Expect(err.Error()).To(Equal("row 2: id is required"))
		})
	})
})

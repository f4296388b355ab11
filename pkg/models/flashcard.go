package models

import "fmt"

type FrontMode string

const (
	FrontJP FrontMode = "jp"
	FrontEN FrontMode = "en"
)

// ParseFrontMode returns false for anything other than "jp" or "en".
func ParseFrontMode(value string) (FrontMode, bool) {
	switch FrontMode(value) {
	case FrontJP, FrontEN:
		return FrontMode(value), true
	}
	return "", false
}

// VocabCard is one validated row of an imported deck. Optional fields are nil
// when the source cell was blank, never pointers to "".
type VocabCard struct {
	ID          string  `json:"id"`
	JP          string  `json:"jp"`
	Hira        string  `json:"hira"`
	EN          string  `json:"en"`
	Example     string  `json:"example"`
	Translation string  `json:"translation"`
	Romaji      *string `json:"romaji,omitempty"`
	ZH          *string `json:"zh,omitempty"`
	Cat         *string `json:"cat,omitempty"`
}

// Front returns the text shown before the card is flipped.
func (c VocabCard) Front(mode FrontMode) string {
	if mode == FrontEN {
		return c.EN
	}
	return c.JP
}

// Back returns the text revealed on flip.
func (c VocabCard) Back(mode FrontMode) string {
	if mode == FrontEN {
		return c.JP + " (" + c.Hira + ")"
	}
	return c.EN
}

// RowError is a single import diagnostic. Row is 1-based and the header is row 1.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

func Optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func Deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

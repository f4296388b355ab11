package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/kpauljoseph/datealingo/pkg/models"
)

// DeckFingerprint hashes card content in order, so the same CSV imported
// twice yields the same fingerprint.
func DeckFingerprint(cards []models.VocabCard) string {
	hasher := sha256.New()
	for _, c := range cards {
		fmt.Fprintf(hasher, "%q%q%q%q%q%q%q%q%q\n",
			c.ID, c.JP, c.Hira, c.EN, c.Example, c.Translation,
			models.Deref(c.Romaji), models.Deref(c.ZH), models.Deref(c.Cat))
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kpauljoseph/datealingo/internal/session"
	"github.com/kpauljoseph/datealingo/pkg/models"
	"github.com/kpauljoseph/datealingo/pkg/utils"
)

var requiredCardFields = []string{"id", "jp", "hira", "en", "example", "translation"}

// DeckInfo describes the most recent import.
type DeckInfo struct {
	ImportID    string
	Fingerprint string
	CardCount   int
	Source      string
	ImportedAt  time.Time
}

func (s *Store) SaveDeck(ctx context.Context, cards []models.VocabCard) error {
	data, err := encodeDeck(cards)
	if err != nil {
		return err
	}
	return put(ctx, s.db, keyDeck, data)
}

// LoadDeck returns nil when no deck is stored or the stored blob is not a
// list of cards.
func (s *Store) LoadDeck(ctx context.Context) ([]models.VocabCard, error) {
	raw, ok, err := s.get(ctx, keyDeck)
	if err != nil || !ok {
		return nil, err
	}
	return decodeDeck(raw), nil
}

func encodeDeck(cards []models.VocabCard) (string, error) {
	if cards == nil {
		cards = []models.VocabCard{}
	}
	data, err := json.Marshal(cards)
	if err != nil {
		return "", fmt.Errorf("marshal deck: %w", err)
	}
	return string(data), nil
}

func decodeDeck(raw string) []models.VocabCard {
	var entries []map[string]any
	if err := json.Unmarshal([]byte(raw), &entries); err != nil || entries == nil {
		return nil
	}
	for _, entry := range entries {
		if entry == nil {
			return nil
		}
		for _, field := range requiredCardFields {
			if _, ok := entry[field].(string); !ok {
				return nil
			}
		}
	}

	var cards []models.VocabCard
	if err := json.Unmarshal([]byte(raw), &cards); err != nil {
		return nil
	}
	for i := range cards {
		cards[i].Romaji = models.Optional(models.Deref(cards[i].Romaji))
		cards[i].ZH = models.Optional(models.Deref(cards[i].ZH))
		cards[i].Cat = models.Optional(models.Deref(cards[i].Cat))
	}
	return cards
}

// ReplaceDeck stores a newly imported deck together with its fresh session
// and the default front mode, in one transaction.
func (s *Store) ReplaceDeck(ctx context.Context, cards []models.VocabCard, state session.State, source string) (*DeckInfo, error) {
	deckBlob, err := encodeDeck(cards)
	if err != nil {
		return nil, err
	}
	stateBlob, err := encodeState(state)
	if err != nil {
		return nil, err
	}

	info := &DeckInfo{
		ImportID:    uuid.NewString(),
		Fingerprint: utils.DeckFingerprint(cards),
		CardCount:   len(cards),
		Source:      source,
		ImportedAt:  time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, kv := range [][2]string{
		{keyDeck, deckBlob},
		{keyState, stateBlob},
		{keyFrontMode, string(models.FrontJP)},
	} {
		if err := put(ctx, tx, kv[0], kv[1]); err != nil {
			return nil, err
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO deck_meta (id, import_id, fingerprint, card_count, source, imported_at)
         VALUES (1, ?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET
             import_id = excluded.import_id, fingerprint = excluded.fingerprint,
             card_count = excluded.card_count, source = excluded.source,
             imported_at = excluded.imported_at`,
		info.ImportID, info.Fingerprint, info.CardCount, nullableString(info.Source),
		info.ImportedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("write deck metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}
	return info, nil
}

// DeckInfo returns nil when nothing has been imported.
func (s *Store) DeckInfo(ctx context.Context) (*DeckInfo, error) {
	var (
		info       DeckInfo
		source     sql.NullString
		importedAt string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT import_id, fingerprint, card_count, source, imported_at FROM deck_meta WHERE id = 1",
	).Scan(&info.ImportID, &info.Fingerprint, &info.CardCount, &source, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read deck metadata: %w", err)
	}

	info.Source = source.String
	if ts, err := time.Parse(time.RFC3339Nano, importedAt); err == nil {
		info.ImportedAt = ts
	}
	return &info, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

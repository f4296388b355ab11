package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/kpauljoseph/datealingo/internal/session"
	"github.com/kpauljoseph/datealingo/pkg/models"
)

type storedState struct {
	Seed          *int64    `json:"seed"`
	Cursor        *int      `json:"cursor"`
	Memorized     *[]string `json:"memorized"`
	HideMemorized *bool     `json:"hideMemorized"`
}

func encodeState(state session.State) (string, error) {
	seed := int64(state.Seed)
	cursor := state.Cursor
	ids := state.MemorizedIDs()
	hide := state.HideMemorized

	data, err := json.Marshal(storedState{
		Seed:          &seed,
		Cursor:        &cursor,
		Memorized:     &ids,
		HideMemorized: &hide,
	})
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}
	return string(data), nil
}

func decodeState(raw string) *session.State {
	var stored storedState
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil
	}
	if stored.Seed == nil || stored.Cursor == nil || stored.Memorized == nil || stored.HideMemorized == nil {
		return nil
	}
	if *stored.Seed < 0 || *stored.Seed > math.MaxUint32 {
		return nil
	}

	memorized := make(map[string]struct{}, len(*stored.Memorized))
	for _, id := range *stored.Memorized {
		memorized[id] = struct{}{}
	}
	return &session.State{
		Seed:          uint32(*stored.Seed),
		Cursor:        *stored.Cursor,
		Memorized:     memorized,
		HideMemorized: *stored.HideMemorized,
	}
}

func (s *Store) SaveState(ctx context.Context, state session.State) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}
	return put(ctx, s.db, keyState, data)
}

// LoadState returns nil when no session is stored or the blob is malformed.
// The cursor is returned as stored; callers clamp it against their deck.
func (s *Store) LoadState(ctx context.Context) (*session.State, error) {
	raw, ok, err := s.get(ctx, keyState)
	if err != nil || !ok {
		return nil, err
	}
	return decodeState(raw), nil
}

func (s *Store) SaveFrontMode(ctx context.Context, mode models.FrontMode) error {
	if _, ok := models.ParseFrontMode(string(mode)); !ok {
		return fmt.Errorf("invalid front mode %q", mode)
	}
	return put(ctx, s.db, keyFrontMode, string(mode))
}

// LoadFrontMode reports false unless a valid mode is stored.
func (s *Store) LoadFrontMode(ctx context.Context) (models.FrontMode, bool, error) {
	raw, ok, err := s.get(ctx, keyFrontMode)
	if err != nil || !ok {
		return "", false, err
	}
	mode, valid := models.ParseFrontMode(raw)
	return mode, valid, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"github.com/kpauljoseph/datealingo/internal/config"
)

const (
	databaseFile = "datealingo.db"
	lockFile     = "datealingo.lock"

	lockRetryDelay = 50 * time.Millisecond
)

// Keys match the names the browser build used in localStorage so exported
// blobs stay interchangeable.
const (
	keyDeck      = "mv_deck_v1"
	keyState     = "mv_state_v1"
	keyFrontMode = "mv_front_mode_v1"
)

var ErrLocked = errors.New("another datealingo command is updating the deck")

// Store is the persistence collaborator for decks and sessions.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open creates the data directory if needed and connects to the database.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(cfg.DataDir, databaseFile)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	s := &Store{
		db:   db,
		path: dbPath,
		lock: flock.New(filepath.Join(cfg.DataDir, lockFile)),
	}
	if err := s.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Lock takes the exclusive writer lock, waiting until ctx is done. The
// returned function releases it.
func (s *Store) Lock(ctx context.Context) (func() error, error) {
	ok, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%w: %v", ErrLocked, err)
		}
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return s.lock.Unlock, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func put(ctx context.Context, db execer, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// get returns "", false, nil when the key is missing.
func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return value, true, nil
}

// ClearAll removes the deck, the session, the front mode, and deck metadata.
func (s *Store) ClearAll(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM kv WHERE key IN (?, ?, ?)", keyDeck, keyState, keyFrontMode); err != nil {
		return fmt.Errorf("clear keys: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM deck_meta"); err != nil {
		return fmt.Errorf("clear deck metadata: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/kpauljoseph/datealingo/internal/config"
	"github.com/kpauljoseph/datealingo/internal/deck"
	"github.com/kpauljoseph/datealingo/internal/session"
	"github.com/kpauljoseph/datealingo/internal/store"
	"github.com/kpauljoseph/datealingo/pkg/logger"
	"github.com/kpauljoseph/datealingo/pkg/models"
)

var errNoDeck = errors.New("no deck imported yet; run 'datealingo import <file>' or 'datealingo import --sample'")

type rootOptions struct {
	configPath string
	dataDir    string
	verbose    bool
	debug      bool
}

type appContext struct {
	opts *rootOptions
	cfg  *config.Config
	log  *logger.Logger
}

func newAppContext(opts *rootOptions) *appContext {
	return &appContext{opts: opts}
}

func (a *appContext) init() error {
	a.log = logger.New(logger.WithPrefix("[datealingo] "))
	a.log.SetVerbose(a.opts.verbose || a.opts.debug)
	if a.opts.debug {
		a.log.SetLevel(logger.LevelTrace)
	}

	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.opts.dataDir != "" {
		cfg.DataDir = a.opts.dataDir
	}
	a.cfg = cfg
	a.log.Debug("Using data directory: %s", cfg.DataDir)
	return nil
}

func (a *appContext) withStore(ctx context.Context, fn func(*store.Store) error) error {
	st, err := store.Open(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	a.log.Trace("Opened store: %s", st.Path())
	return fn(st)
}

// withLockedStore serialises writers across processes.
func (a *appContext) withLockedStore(ctx context.Context, fn func(*store.Store) error) error {
	return a.withStore(ctx, func(st *store.Store) error {
		unlock, err := st.Lock(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err := unlock(); err != nil {
				a.log.Warn("failed to release lock: %v", err)
			}
		}()
		return fn(st)
	})
}

// studyView is everything a study command needs, with the cursor already
// clamped against the stored deck.
type studyView struct {
	cards []models.VocabCard
	state session.State
	front models.FrontMode
}

func (a *appContext) loadStudy(ctx context.Context, st *store.Store) (*studyView, error) {
	cards, err := st.LoadDeck(ctx)
	if err != nil {
		return nil, err
	}
	if cards == nil {
		return nil, errNoDeck
	}

	saved, err := st.LoadState(ctx)
	if err != nil {
		return nil, err
	}
	var state session.State
	if saved == nil {
		a.log.Debug("No usable session stored, starting a fresh one")
		state = a.freshState()
	} else {
		state = *saved
	}

	front, ok, err := st.LoadFrontMode(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		front = a.cfg.FrontMode
	}

	return &studyView{
		cards: cards,
		state: session.ClampCursor(state, cards),
		front: front,
	}, nil
}

func (a *appContext) freshState() session.State {
	state := session.New(deck.GenerateSeed())
	state.HideMemorized = *a.cfg.HideMemorized
	return state
}

// readStudy loads the session without changing it.
func (a *appContext) readStudy(ctx context.Context, fn func(*studyView) error) error {
	return a.withStore(ctx, func(st *store.Store) error {
		view, err := a.loadStudy(ctx, st)
		if err != nil {
			return err
		}
		return fn(view)
	})
}

// updateStudy applies a transition and persists the resulting state.
func (a *appContext) updateStudy(ctx context.Context, fn func(*studyView) (session.State, error)) (*studyView, error) {
	var result *studyView
	err := a.withLockedStore(ctx, func(st *store.Store) error {
		view, err := a.loadStudy(ctx, st)
		if err != nil {
			return err
		}
		next, err := fn(view)
		if err != nil {
			return err
		}
		if err := st.SaveState(ctx, next); err != nil {
			return err
		}
		a.log.Debug("Saved session: seed=%d cursor=%d memorized=%d hide=%t",
			next.Seed, next.Cursor, len(next.Memorized), next.HideMemorized)
		view.state = next
		result = view
		return nil
	})
	return result, err
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/datealingo/internal/deck"
	"github.com/kpauljoseph/datealingo/internal/session"
	"github.com/kpauljoseph/datealingo/internal/store"
	"github.com/kpauljoseph/datealingo/pkg/models"
)

func newShowCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.readStudy(cmd.Context(), func(view *studyView) error {
				printCard(cmd.OutOrStdout(), view)
				return nil
			})
		},
	}
}

func newFlipCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "flip",
		Short: "Show both sides of the current card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.readStudy(cmd.Context(), func(view *studyView) error {
				printFlipped(cmd.OutOrStdout(), view)
				return nil
			})
		},
	}
}

func newSwipeCommand(app *appContext, use, short string, swipe session.Swipe) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.updateStudy(cmd.Context(), func(view *studyView) (session.State, error) {
				if current, ok := session.Current(view.state, view.cards); ok {
					app.log.Debug("Swipe %s on card %s", swipe, current.ID)
				}
				return session.ApplySwipe(view.state, view.cards, swipe), nil
			})
			if err != nil {
				return err
			}
			printCard(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func newRestartCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Go back to the first card, keeping the order and progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransition(cmd, app, func(view *studyView) (session.State, error) {
				return session.Restart(view.state, view.cards), nil
			})
		},
	}
}

func newReshuffleCommand(app *appContext) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "reshuffle",
		Short: "Shuffle the deck into a new order, keeping progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			next := deck.GenerateSeed()
			if cmd.Flags().Changed("seed") {
				if seed < 0 || seed >= deck.MaxSeed {
					return fmt.Errorf("seed must be between 0 and %d", deck.MaxSeed-1)
				}
				next = uint32(seed)
			}
			return runTransition(cmd, app, func(view *studyView) (session.State, error) {
				return session.Reshuffle(view.state, next), nil
			})
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "use this seed instead of a time-based one")
	return cmd
}

func newResetCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget which cards are memorized",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransition(cmd, app, func(view *studyView) (session.State, error) {
				return session.ResetMemorized(view.state), nil
			})
		},
	}
}

func newHideCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:       "hide on|off",
		Short:     "Choose whether memorized cards leave the deck",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			hide, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			return runTransition(cmd, app, func(view *studyView) (session.State, error) {
				return session.SetHideMemorized(view.state, hide, view.cards), nil
			})
		},
	}
}

func newFrontCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:       "front jp|en",
		Short:     "Choose which side of the card is shown first",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(models.FrontJP), string(models.FrontEN)},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, ok := models.ParseFrontMode(args[0])
			if !ok {
				return fmt.Errorf("front mode must be %q or %q", models.FrontJP, models.FrontEN)
			}
			ctx := cmd.Context()
			return app.withLockedStore(ctx, func(st *store.Store) error {
				if err := st.SaveFrontMode(ctx, mode); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Front side: %s\n", mode)
				return nil
			})
		},
	}
}

func runTransition(cmd *cobra.Command, app *appContext, fn func(*studyView) (session.State, error)) error {
	view, err := app.updateStudy(cmd.Context(), fn)
	if err != nil {
		return err
	}
	printCard(cmd.OutOrStdout(), view)
	return nil
}

func newListCommand(app *appContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards in study order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.readStudy(cmd.Context(), func(view *studyView) error {
				state := view.state
				if all {
					state = session.SetHideMemorized(state, false, view.cards)
				}
				current, hasCurrent := session.Current(view.state, view.cards)

				var rows [][]string
				for i, card := range session.Active(state, view.cards) {
					marker := ""
					if hasCurrent && card.ID == current.ID {
						marker = "▶"
					}
					done := ""
					if view.state.IsMemorized(card.ID) {
						done = "✓"
					}
					rows = append(rows, []string{marker, strconv.Itoa(i + 1), card.ID, card.JP, card.Hira, card.EN, done})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"", "#", "ID", "Word", "Reading", "Meaning", "Known"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include memorized cards")
	return cmd
}

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/datealingo/internal/csvimport"
	"github.com/kpauljoseph/datealingo/internal/session"
	"github.com/kpauljoseph/datealingo/internal/store"
)

func newStatusCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show deck and session details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return app.withStore(ctx, func(st *store.Store) error {
				view, err := app.loadStudy(ctx, st)
				if err != nil {
					return err
				}
				info, err := st.DeckInfo(ctx)
				if err != nil {
					return err
				}

				memorized, total := session.Progress(view.state, view.cards)
				rows := [][]string{
					{"Cards", strconv.Itoa(total)},
					{"Memorized", strconv.Itoa(memorized)},
					{"Active", strconv.Itoa(len(session.Active(view.state, view.cards)))},
					{"Cursor", strconv.Itoa(view.state.Cursor)},
					{"Seed", strconv.FormatUint(uint64(view.state.Seed), 10)},
					{"Hide memorized", onOff(view.state.HideMemorized)},
					{"Front side", string(view.front)},
					{"Database", st.Path()},
				}
				if info != nil {
					rows = append(rows,
						[]string{"Source", info.Source},
						[]string{"Imported", info.ImportedAt.Local().Format(time.DateTime)},
						[]string{"Import ID", info.ImportID},
					)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
				return nil
			})
		},
	}
}

func newPromptCommand(app *appContext) *cobra.Command {
	var (
		count int
		topic string
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print a prompt for generating a word list with an AI assistant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				count = app.cfg.Prompt.Count
			}
			if !cmd.Flags().Changed("topic") {
				topic = app.cfg.Prompt.Topic
			}
			n := ""
			if count > 0 {
				n = strconv.Itoa(count)
			}
			fmt.Fprintln(cmd.OutOrStdout(), csvimport.Prompt(n, topic))
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of words to ask for")
	cmd.Flags().StringVarP(&topic, "topic", "t", "", "topic of the word list")
	return cmd
}

func newClearCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored deck, progress, and preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return app.withLockedStore(ctx, func(st *store.Store) error {
				if err := st.ClearAll(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cleared all stored data")
				return nil
			})
		},
	}
}

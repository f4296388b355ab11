package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/datealingo/internal/csvimport"
	"github.com/kpauljoseph/datealingo/internal/scanner"
)

func newCheckCommand(app *appContext) *cobra.Command {
	var (
		dir    string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "check [file|-]",
		Short: "Validate a vocabulary CSV without importing it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir != "" {
				if len(args) > 0 {
					return errors.New("--dir cannot be combined with a file argument")
				}
				return checkDirectory(cmd, app, dir, prefix)
			}
			if len(args) == 0 {
				return errors.New("provide a file argument or --dir")
			}

			raw, source, err := readDeckInput(cmd, args, false)
			if err != nil {
				return err
			}
			cards, err := importCards(cmd.OutOrStdout(), raw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d cards, no problems\n", source, len(cards))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "validate every .csv file below this directory")
	cmd.Flags().StringVar(&prefix, "root-deck", "", "prefix for deck names derived from paths")
	return cmd
}

func checkDirectory(cmd *cobra.Command, app *appContext, dir, prefix string) error {
	files, err := scanner.New(app.log).FindCSVs(cmd.Context(), dir, prefix)
	if err != nil {
		return err
	}
	app.log.Info("Found %d CSV files to check", len(files))

	var (
		rows   [][]string
		failed int
	)
	for _, file := range files {
		f, err := os.Open(file.AbsolutePath)
		if err != nil {
			return fmt.Errorf("open %s: %w", file.RelativePath, err)
		}
		raw, err := csvimport.Decode(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", file.RelativePath, err)
		}

		cards, err := csvimport.Import(raw)
		result := "ok"
		var importErr *csvimport.ImportError
		switch {
		case errors.As(err, &importErr):
			failed++
			result = importErr.Errors[0].Error()
			if n := len(importErr.Errors); n > 1 {
				result += fmt.Sprintf(" (+%d more)", n-1)
			}
		case err != nil:
			failed++
			result = err.Error()
		}
		rows = append(rows, []string{file.DeckName, file.RelativePath, strconv.Itoa(len(cards)), result})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Deck", "File", "Cards", "Result"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	))

	if failed > 0 {
		return fmt.Errorf("%d of %d files have problems", failed, len(files))
	}
	return nil
}

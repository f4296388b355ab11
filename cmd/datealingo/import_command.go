package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/datealingo/internal/csvimport"
	"github.com/kpauljoseph/datealingo/internal/store"
	"github.com/kpauljoseph/datealingo/pkg/models"
)

func newImportCommand(app *appContext) *cobra.Command {
	var (
		sample bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "import [file|-]",
		Short: "Import a vocabulary CSV, replacing the current deck and progress",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sample == (len(args) == 1) {
				return errors.New("provide exactly one of a file argument or --sample")
			}

			raw, source, err := readDeckInput(cmd, args, sample)
			if err != nil {
				return err
			}

			cards, err := importCards(cmd.OutOrStdout(), raw)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return app.withLockedStore(ctx, func(st *store.Store) error {
				existing, err := st.LoadDeck(ctx)
				if err != nil {
					return err
				}
				if existing != nil && !force {
					return fmt.Errorf("a deck with %d cards is already imported; importing replaces it and resets progress (re-run with --force)", len(existing))
				}

				info, err := st.ReplaceDeck(ctx, cards, app.freshState(), source)
				if err != nil {
					return err
				}
				app.log.Debug("Import %s fingerprint %s", info.ImportID, info.Fingerprint)
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cards from %s\n", info.CardCount, source)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "import the built-in sample deck")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing deck without asking")
	return cmd
}

func readDeckInput(cmd *cobra.Command, args []string, sample bool) (raw, source string, err error) {
	if sample {
		return csvimport.SampleCSV, "sample deck", nil
	}

	path := args[0]
	var r io.Reader
	if path == "-" {
		r, source = cmd.InOrStdin(), "stdin"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", "", fmt.Errorf("open deck file: %w", err)
		}
		defer f.Close()
		r, source = f, path
	}

	raw, err = csvimport.Decode(r)
	if err != nil {
		return "", "", err
	}
	return raw, source, nil
}

// importCards prints diagnostics for rejected input before returning the error.
func importCards(w io.Writer, raw string) ([]models.VocabCard, error) {
	cards, err := csvimport.Import(raw)
	var importErr *csvimport.ImportError
	switch {
	case errors.As(err, &importErr):
		printDiagnostics(w, importErr.Errors)
		return nil, fmt.Errorf("import rejected: %d problem(s) found, nothing was saved", len(importErr.Errors))
	case err != nil:
		return nil, err
	}
	return cards, nil
}

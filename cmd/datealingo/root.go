package main

import (
	"github.com/spf13/cobra"

	"github.com/kpauljoseph/datealingo/internal/session"
	"github.com/kpauljoseph/datealingo/pkg/version"
)

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	app := newAppContext(opts)

	rootCmd := &cobra.Command{
		Use:           "datealingo",
		Short:         "Swipe through vocabulary flashcards imported from CSV",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.SetVersionTemplate(version.GetDetailedVersionInfo())

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "configuration file path")
	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory holding the deck database (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug mode with trace logging")

	rootCmd.AddCommand(newImportCommand(app))
	rootCmd.AddCommand(newCheckCommand(app))
	rootCmd.AddCommand(newShowCommand(app))
	rootCmd.AddCommand(newFlipCommand(app))
	rootCmd.AddCommand(newSwipeCommand(app, "keep", "Keep the current card in the deck and move on", session.SwipeKeep))
	rootCmd.AddCommand(newSwipeCommand(app, "known", "Mark the current card as memorized", session.SwipeKnown))
	rootCmd.AddCommand(newRestartCommand(app))
	rootCmd.AddCommand(newReshuffleCommand(app))
	rootCmd.AddCommand(newResetCommand(app))
	rootCmd.AddCommand(newHideCommand(app))
	rootCmd.AddCommand(newFrontCommand(app))
	rootCmd.AddCommand(newListCommand(app))
	rootCmd.AddCommand(newStatusCommand(app))
	rootCmd.AddCommand(newPromptCommand(app))
	rootCmd.AddCommand(newClearCommand(app))

	return rootCmd
}

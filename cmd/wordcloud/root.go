package main

import (
	"errors"

	"github.com/spf13/cobra"

	"wordcloud/internal/failure"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "wordcloud",
		Short:         "Word frequency counter and HTML tag cloud renderer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// exitCode maps failure kinds to distinct process exit statuses.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, failure.ErrSelection):
		return 3
	case errors.Is(err, failure.ErrIO):
		return 4
	case errors.Is(err, failure.ErrConfiguration), errors.Is(err, failure.ErrValidation):
		return 2
	default:
		return 1
	}
}

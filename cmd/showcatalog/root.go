package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	app := newApp()

	rootCmd := &cobra.Command{
		Use:           "showcatalog",
		Short:         "TV-show catalog client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.start()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.stop()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newHomeCommand(app))
	rootCmd.AddCommand(newShowCommand(app))
	rootCmd.AddCommand(newSearchCommand(app))

	return rootCmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHomeCommand(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Fetch and render the categorized home-screen show lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categorized, err := app.service.CategorizedShows(cmd.Context())
			if err != nil {
				return err
			}

			for _, category := range categorized {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n%s\n", category.Name, renderShowsTable(category.Shows))
			}
			return nil
		},
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCommand(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog for shows",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			results, err := app.service.Search(cmd.Context(), query)
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No shows matched %q\n", query)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderSearchTable(results))
			return nil
		},
	}
}

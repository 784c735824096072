package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bzweiacker/showcatalog/internal/apperrors"
)

func newShowCommand(app *app) *cobra.Command {
	var fetchArt bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Fetch the detail view of a single show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("show ID must be an integer: %q", args[0])
			}

			ctx := cmd.Context()
			show, err := app.service.Show(ctx, id)
			if err != nil {
				return err
			}

			// A show without a backdrop is still renderable; only real
			// fetch failures abort the command.
			backgroundURL, err := app.service.BackgroundImageURL(ctx, id)
			if err != nil && !errors.Is(err, &apperrors.ErrEmptyImages{}) && !errors.Is(err, &apperrors.ErrNoBackgroundImage{}) {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderShowDetail(show, backgroundURL))

			if fetchArt {
				poster := app.loader.Load(ctx, show.PosterURL())
				bounds := poster.Bounds()
				fmt.Fprintf(cmd.OutOrStdout(), "Poster: %dx%d px\n", bounds.Dx(), bounds.Dy())

				if backgroundURL != "" {
					backdrop := app.loader.Load(ctx, backgroundURL)
					bounds = backdrop.Bounds()
					fmt.Fprintf(cmd.OutOrStdout(), "Backdrop: %dx%d px\n", bounds.Dx(), bounds.Dy())
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fetchArt, "fetch-art", false, "Download the show's artwork and report its dimensions")
	return cmd
}

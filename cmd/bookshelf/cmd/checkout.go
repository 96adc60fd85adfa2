package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhuntleyit/bookshelf/pkg/errors"
)

// NewCheckOutCommand creates the checkout command.
func NewCheckOutCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <id>",
		Short: "Check out a book by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			lib, err := app.Library()
			if err != nil {
				return err
			}

			if !lib.CheckOut(id) {
				return errors.NewNotFoundError("book", id)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated book with ID %d to Checked Out.\n", id)
			return nil
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhuntleyit/bookshelf/pkg/errors"
)

// NewCheckInCommand creates the checkin command.
func NewCheckInCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "checkin <id>",
		Short: "Check in a book by ID",
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

			if !lib.CheckIn(id) {
				return errors.NewNotFoundError("book", id)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated book with ID %d to Available.\n", id)
			return nil
		},
	}
}

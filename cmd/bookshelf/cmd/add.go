package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "add <title> <author>",
		Short:   "Add a book to the catalog",
		Example: `  bookshelf add "Dune" "Frank Herbert"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			book, err := lib.Add(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %q by %s with ID %d.\n", book.Title, book.Author, book.ID)
			return nil
		},
	}
}

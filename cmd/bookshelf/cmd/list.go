package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhuntleyit/bookshelf/internal/cmd/output"
)

// NewListCommand creates the list command.
func NewListCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			list := lib.Books()
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No books in the library yet.")
				return nil
			}

			return output.Table(cmd.OutOrStdout(), list)
		},
	}
}

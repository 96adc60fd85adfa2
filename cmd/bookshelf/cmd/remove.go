package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhuntleyit/bookshelf/pkg/errors"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(app AppContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"delete", "rm"},
		Short:   "Delete a book from the catalog by ID",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			lib, err := app.Library()
			if err != nil {
				return err
			}

			if !yes && !confirm(cmd, fmt.Sprintf("Delete book with ID %d? (y/N): ", id)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			if !lib.Remove(id) {
				return errors.NewNotFoundError("book", id)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted book with ID %d from the library.\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

// confirm prompts the user and reports whether they answered yes.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

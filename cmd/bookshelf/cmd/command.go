// Package cmd implements the bookshelf subcommands. Commands receive
// their dependencies through the AppContext interface, which decouples
// them from the full app and keeps them testable.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/jhuntleyit/bookshelf"
)

// AppContext defines the interface that commands need from the app.
type AppContext interface {
	Library() (bookshelf.Library, error)
	Logger() *zerolog.Logger
}

// parseID parses a book id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid book ID %q", arg)
	}
	return id, nil
}

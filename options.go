package bookshelf

import (
	"github.com/rs/zerolog"

	"github.com/jhuntleyit/bookshelf/pkg/books"
	"github.com/jhuntleyit/bookshelf/pkg/constants"
	"github.com/jhuntleyit/bookshelf/pkg/errors"
	"github.com/jhuntleyit/bookshelf/pkg/logging"
)

// Option is a function that configures a Library instance
type Option func(*config) error

// config collects the construction-time settings for a Library
type config struct {
	path            string
	logger          zerolog.Logger
	seeds           []books.Seed
	seedingDisabled bool
}

func defaultConfig() *config {
	return &config{
		path:   constants.DefaultLibraryFile,
		logger: *logging.Default(),
	}
}

// WithPath configures the backing file path. The file is created and
// seeded on first use when it does not exist.
func WithPath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewValidationError("path", path, "must not be empty")
		}
		c.path = path
		return nil
	}
}

// WithLogger configures the diagnostic logger used for skipped lines
// and tolerated I/O failures. Defaults to the package-wide logger;
// pass logging.Nop to silence the library.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithSeedCatalog replaces the embedded default catalog used to seed
// an empty backing file.
func WithSeedCatalog(entries []books.Seed) Option {
	return func(c *config) error {
		for _, entry := range entries {
			if entry.Title == "" || entry.Author == "" {
				return errors.NewValidationError("seed", entry, "title and author must not be empty")
			}
		}
		c.seeds = entries
		return nil
	}
}

// WithoutSeeding disables first-use seeding entirely; a missing or
// empty backing file then loads as an empty catalog.
func WithoutSeeding() Option {
	return func(c *config) error {
		c.seedingDisabled = true
		return nil
	}
}

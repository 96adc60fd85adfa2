// Package app provides the application context and dependency management
// for the bookshelf CLI. It centralizes configuration, logging, and the
// library instance behind one type that commands draw on.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhuntleyit/bookshelf"
)

// App represents the bookshelf application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Library instance (lazy-initialized, singleton)
	mu      sync.Mutex
	library bookshelf.Library
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Library returns the library instance, creating it lazily on first
// use. Construction loads the backing file and seeds it when empty.
func (a *App) Library() (bookshelf.Library, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.library != nil {
		return a.library, nil
	}

	lib, err := bookshelf.New(
		bookshelf.WithPath(a.config.LibraryFile),
		bookshelf.WithLogger(*a.logger),
	)
	if err != nil {
		return nil, err
	}
	a.library = lib
	return lib, nil
}

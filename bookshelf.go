// Package bookshelf manages a small catalog of book records persisted
// to a flat text file. The file is fully rewritten on every mutation,
// so the in-memory collection and the file are kept in lockstep. A
// fresh library seeds itself with a default catalog on first use.
package bookshelf

import (
	"fmt"

	"github.com/jhuntleyit/bookshelf/internal/seed"
	"github.com/jhuntleyit/bookshelf/internal/store"
	"github.com/jhuntleyit/bookshelf/pkg/books"
)

// Library is the catalog surface consumed by the CLI and other
// embedders. All prompting, input retries, and confirmations belong to
// the caller; the library only manages records.
type Library interface {
	// Books returns the catalog in insertion/load order.
	Books() []books.Book

	// Add creates a new record with the next free id. Title and
	// author must be non-empty.
	Add(title, author string) (books.Book, error)

	// CheckOut marks the record with the given id as checked out.
	// Reports whether the record exists.
	CheckOut(id int) bool

	// CheckIn marks the record with the given id as available.
	// Reports whether the record exists.
	CheckIn(id int) bool

	// Remove deletes the record with the given id.
	// Reports whether anything was removed.
	Remove(id int) bool

	// Path returns the backing file path.
	Path() string
}

// library is the internal implementation of the Library interface
type library struct {
	store *store.Store
}

// New creates a new Library with the given options. Construction loads
// the backing file, seeding it first when it is missing or empty.
func New(opts ...Option) (Library, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	seeds := cfg.seeds
	if cfg.seedingDisabled {
		seeds = nil
	} else if seeds == nil {
		seeds = seed.Default()
	}

	lib := &library{
		store: store.New(cfg.path, seeds, cfg.logger),
	}
	lib.store.Load()

	return lib, nil
}

func (l *library) Books() []books.Book {
	return l.store.List()
}

func (l *library) Add(title, author string) (books.Book, error) {
	return l.store.Add(title, author)
}

func (l *library) CheckOut(id int) bool {
	return l.store.SetStatus(id, true)
}

func (l *library) CheckIn(id int) bool {
	return l.store.SetStatus(id, false)
}

func (l *library) Remove(id int) bool {
	return l.store.DeleteByID(id)
}

func (l *library) Path() string {
	return l.store.Path()
}

// Package store implements the file-backed record store. It owns the
// full in-memory collection of books, loads it from the backing file,
// and rewrites the whole file on every mutation so that memory and disk
// stay in lockstep.
//
// The store is single-owner and synchronous: one Store instance owns
// the backing file for the lifetime of the process and no locking is
// applied. Concurrent access produces undefined results.
package store

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/jhuntleyit/bookshelf/internal/seed"
	"github.com/jhuntleyit/bookshelf/pkg/books"
	"github.com/jhuntleyit/bookshelf/pkg/constants"
	"github.com/jhuntleyit/bookshelf/pkg/errors"
)

// Store owns the in-memory collection and its file persistence.
type Store struct {
	path    string
	log     zerolog.Logger
	seeds   []books.Seed
	records []books.Book
}

// New creates a store backed by the file at path. A nil seed catalog
// disables first-use seeding. The logger is the diagnostic sink for
// skipped lines and tolerated I/O failures.
func New(path string, seeds []books.Seed, log zerolog.Logger) *Store {
	return &Store{
		path:  path,
		log:   log,
		seeds: seeds,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file into the in-memory collection, seeding
// the file first when it is absent or exactly zero bytes long. Blank
// lines are skipped; lines that fail to decode are skipped and logged;
// an unreadable file is treated as empty. Load never fails: every
// error degrades to a diagnostic and a smaller collection.
func (s *Store) Load() {
	if s.seeds != nil {
		seed.IfEmpty(s.path, s.seeds, s.log)
	}

	s.records = nil

	f, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(errors.WrapIO("open", s.path, err)).Msg("Could not open backing file, starting empty")
		}
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		book, err := books.DecodeLine(line)
		if err != nil {
			s.log.Warn().Err(err).Str("line", line).Msg("Skipping invalid line")
			continue
		}
		s.records = append(s.records, book)
	}
	if err := scanner.Err(); err != nil {
		s.log.Warn().Err(errors.WrapIO("read", s.path, err)).Msg("Backing file read stopped early")
	}
}

// Add validates the title and author, assigns the next id, appends the
// new record, and rewrites the backing file. The arguments are checked
// against the exact empty string; no trimming is applied.
func (s *Store) Add(title, author string) (books.Book, error) {
	if title == "" {
		return books.Book{}, errors.NewValidationError("title", title, "must not be empty")
	}
	if author == "" {
		return books.Book{}, errors.NewValidationError("author", author, "must not be empty")
	}

	book := books.Book{
		ID:     s.nextID(),
		Title:  title,
		Author: author,
	}
	s.records = append(s.records, book)
	s.rewrite()
	return book, nil
}

// List returns the current in-memory collection in insertion/load
// order. It does not reload from the backing file; an empty collection
// is a valid result.
func (s *Store) List() []books.Book {
	out := make([]books.Book, len(s.records))
	copy(out, s.records)
	return out
}

// SetStatus applies the checked-out status to the first record with a
// matching id and rewrites the backing file. Reports whether a record
// was found; a miss leaves both memory and file untouched.
func (s *Store) SetStatus(id int, checkedOut bool) bool {
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		if checkedOut {
			s.records[i].CheckOut()
		} else {
			s.records[i].CheckIn()
		}
		s.rewrite()
		return true
	}
	return false
}

// DeleteByID removes every record with a matching id, preserving the
// relative order of the survivors, and rewrites the backing file when
// at least one record was removed. Reports whether anything was
// deleted.
func (s *Store) DeleteByID(id int) bool {
	kept := s.records[:0]
	for _, book := range s.records {
		if book.ID != id {
			kept = append(kept, book)
		}
	}
	if len(kept) == len(s.records) {
		return false
	}
	s.records = kept
	s.rewrite()
	return true
}

// nextID computes max(existing ids)+1, or 1 for an empty collection.
// Gap ids freed in the middle of the range are never recycled.
func (s *Store) nextID() int {
	maxID := 0
	for _, book := range s.records {
		if book.ID > maxID {
			maxID = book.ID
		}
	}
	return maxID + 1
}

// rewrite encodes every record in current order, one per line, and
// overwrites the backing file in place. A failure to open or write the
// file is reported to the logger and tolerated: the in-memory state
// stays authoritative and the next successful mutation rewrites again.
func (s *Store) rewrite() {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		s.log.Error().Err(errors.WrapIO("write", s.path, err)).Msg("Could not rewrite backing file")
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, book := range s.records {
		fmt.Fprintln(w, books.EncodeLine(book))
	}
	if err := w.Flush(); err != nil {
		s.log.Error().Err(errors.WrapIO("write", s.path, err)).Msg("Could not rewrite backing file")
	}
}

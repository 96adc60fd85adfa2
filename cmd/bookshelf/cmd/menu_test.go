package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhuntleyit/bookshelf"
	"github.com/jhuntleyit/bookshelf/pkg/books"
	"github.com/jhuntleyit/bookshelf/pkg/logging"
)

func newTestLibrary(t *testing.T) bookshelf.Library {
	t.Helper()
	lib, err := bookshelf.New(
		bookshelf.WithPath(filepath.Join(t.TempDir(), "library.csv")),
		bookshelf.WithLogger(logging.Nop),
		bookshelf.WithSeedCatalog([]books.Seed{
			{Title: "The Hobbit", Author: "J.R.R. Tolkien"},
			{Title: "Coraline", Author: "Neil Gaiman"},
		}),
	)
	require.NoError(t, err)
	return lib
}

func TestRunMenu(t *testing.T) {
	lib := newTestLibrary(t)

	// List, add a book, check it out, then exit.
	input := strings.Join([]string{
		"2",
		"1", "Dune", "Frank Herbert",
		"3", "3",
		"6",
	}, "\n") + "\n"

	var out bytes.Buffer
	err := runMenu(strings.NewReader(input), &out, lib)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Welcome to the Library System!")
	assert.Contains(t, out.String(), "Book ID: 1 | Title: The Hobbit | Author: J.R.R. Tolkien | Status: Available")
	assert.Contains(t, out.String(), `Added "Dune" by Frank Herbert with ID 3.`)
	assert.Contains(t, out.String(), "Updated book with ID 3 to Checked Out.")
	assert.Contains(t, out.String(), "Exiting program. Goodbye!")

	list := lib.Books()
	require.Len(t, list, 3)
	assert.True(t, list[2].CheckedOut)
}

func TestRunMenuInvalidInput(t *testing.T) {
	lib := newTestLibrary(t)

	input := "nonsense\n9\n6\n"
	var out bytes.Buffer
	err := runMenu(strings.NewReader(input), &out, lib)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Invalid input. Please enter a number between 1 and 6.")
	assert.Contains(t, out.String(), "Invalid choice. Please enter a number between 1 and 6.")
}

func TestRunMenuDelete(t *testing.T) {
	lib := newTestLibrary(t)

	t.Run("confirmed delete removes the book", func(t *testing.T) {
		input := "5\n1\ny\n6\n"
		var out bytes.Buffer
		require.NoError(t, runMenu(strings.NewReader(input), &out, lib))

		assert.Contains(t, out.String(), "Deleted book with ID 1 from the library.")
		assert.Len(t, lib.Books(), 1)
	})

	t.Run("declined delete keeps the book", func(t *testing.T) {
		input := "5\n2\nn\n6\n"
		var out bytes.Buffer
		require.NoError(t, runMenu(strings.NewReader(input), &out, lib))

		assert.Contains(t, out.String(), "Delete cancelled.")
		assert.Len(t, lib.Books(), 1)
	})

	t.Run("unknown id reports an error", func(t *testing.T) {
		input := "5\n42\ny\n6\n"
		var out bytes.Buffer
		require.NoError(t, runMenu(strings.NewReader(input), &out, lib))

		assert.Contains(t, out.String(), "Error: Book with ID 42 not found, cannot delete.")
	})
}

func TestRunMenuEndOfInput(t *testing.T) {
	lib := newTestLibrary(t)

	var out bytes.Buffer
	err := runMenu(strings.NewReader(""), &out, lib)
	require.NoError(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = parseID("abc")
	assert.Error(t, err)
}

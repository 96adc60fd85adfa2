package books_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhuntleyit/bookshelf/pkg/books"
	"github.com/jhuntleyit/bookshelf/pkg/errors"
)

func TestEncodeLine(t *testing.T) {
	t.Run("available book", func(t *testing.T) {
		book := books.Book{ID: 1, Title: "The Hobbit", Author: "J.R.R. Tolkien"}
		assert.Equal(t, "1, The Hobbit, J.R.R. Tolkien, No", books.EncodeLine(book))
	})

	t.Run("checked out book", func(t *testing.T) {
		book := books.Book{ID: 42, Title: "Good Omens", Author: "Neil Gaiman", CheckedOut: true}
		assert.Equal(t, "42, Good Omens, Neil Gaiman, Yes", books.EncodeLine(book))
	})
}

func TestDecodeLine(t *testing.T) {
	t.Run("well-formed line", func(t *testing.T) {
		book, err := books.DecodeLine("5, The Giver, Lois Lowry, Yes")
		require.NoError(t, err)
		assert.Equal(t, books.Book{ID: 5, Title: "The Giver", Author: "Lois Lowry", CheckedOut: true}, book)
	})

	t.Run("surrounding whitespace and tabs are trimmed", func(t *testing.T) {
		book, err := books.DecodeLine("\t 3 ,\tThe Great Gatsby , F. Scott Fitzgerald\t,  No ")
		require.NoError(t, err)
		assert.Equal(t, books.Book{ID: 3, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald"}, book)
	})

	t.Run("status is lenient", func(t *testing.T) {
		// Anything other than Yes reads as available.
		for _, status := range []string{"No", "no", "yes", "maybe", ""} {
			book, err := books.DecodeLine("1, A, B, " + status)
			require.NoError(t, err, "status %q", status)
			assert.False(t, book.CheckedOut, "status %q", status)
		}
	})

	t.Run("too few fields", func(t *testing.T) {
		_, err := books.DecodeLine("1, Title, Author")
		require.Error(t, err)
		assert.True(t, errors.IsDecodeError(err))
	})

	t.Run("too many fields", func(t *testing.T) {
		_, err := books.DecodeLine("1, Title, With, Commas, Yes")
		require.Error(t, err)
		assert.True(t, errors.IsDecodeError(err))
	})

	t.Run("non-integer id", func(t *testing.T) {
		_, err := books.DecodeLine("abc, Title, Author, Yes")
		require.Error(t, err)
		assert.True(t, errors.IsDecodeError(err))

		var decodeErr *errors.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "abc, Title, Author, Yes", decodeErr.Line)
	})
}

func TestRoundTrip(t *testing.T) {
	cases := []books.Book{
		{ID: 1, Title: "Don Quixote", Author: "Miguel de Cervantes"},
		{ID: 19, Title: "The Last Olympian", Author: "Rick Riordan", CheckedOut: true},
		{ID: 230, Title: "Harry Potter and the Sorcerer’s Stone", Author: "JK Rowling"},
	}

	for _, book := range cases {
		decoded, err := books.DecodeLine(books.EncodeLine(book))
		require.NoError(t, err)
		assert.Equal(t, book, decoded)
	}
}

// Package output renders catalog listings for the CLI.
package output

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhuntleyit/bookshelf/pkg/books"
)

// Table writes the book list as an aligned table with one row per
// record, in the order given.
func Table(w io.Writer, list []books.Book) error {
	caser := cases.Title(language.English)

	table := tablewriter.NewTable(w)
	table.Header("ID", caser.String("title"), caser.String("author"), caser.String("status"))

	for _, book := range list {
		if err := table.Append(strconv.Itoa(book.ID), book.Title, book.Author, book.Status()); err != nil {
			return err
		}
	}

	return table.Render()
}

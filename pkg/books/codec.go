package books

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhuntleyit/bookshelf/pkg/errors"
)

// Status tokens as persisted in the backing file.
const (
	statusCheckedOut = "Yes"
	statusAvailable  = "No"
)

// fieldCutset is what surrounding whitespace means for a decoded field.
const fieldCutset = " \t"

// EncodeLine produces the one-line text form of a book:
//
//	id, title, author, status
//
// Fields are separated by a comma and a single space and status is the
// literal Yes or No. Fields are not escaped, so a title or author that
// contains a comma will corrupt parsing on the next load. Known
// limitation of the format, kept for compatibility with existing files.
func EncodeLine(b Book) string {
	status := statusAvailable
	if b.CheckedOut {
		status = statusCheckedOut
	}
	return fmt.Sprintf("%d, %s, %s, %s", b.ID, b.Title, b.Author, status)
}

// DecodeLine parses one line of the backing file into a Book. The line
// is split on commas and each field is trimmed of surrounding spaces
// and tabs. A line that does not have exactly 4 fields, or whose id
// field is not a base-10 integer, yields a DecodeError. The status
// field is read leniently: Yes means checked out, any other value
// means available.
func DecodeLine(line string) (Book, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return Book{}, errors.NewDecodeError(line,
			fmt.Sprintf("expected 4 fields, got %d", len(parts)), nil)
	}

	for i, part := range parts {
		parts[i] = strings.Trim(part, fieldCutset)
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Book{}, errors.NewDecodeError(line,
			fmt.Sprintf("invalid id %q", parts[0]), err)
	}

	return Book{
		ID:         id,
		Title:      parts[1],
		Author:     parts[2],
		CheckedOut: parts[3] == statusCheckedOut,
	}, nil
}

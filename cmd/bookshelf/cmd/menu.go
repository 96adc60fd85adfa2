package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhuntleyit/bookshelf"
	"github.com/jhuntleyit/bookshelf/pkg/books"
)

// NewMenuCommand creates the interactive menu command, the classic
// library-system loop: a numbered menu repeated until the user exits.
func NewMenuCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive library menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}
			return runMenu(cmd.InOrStdin(), cmd.OutOrStdout(), lib)
		},
	}
}

// runMenu drives the menu loop. Invalid input re-prompts; the loop only
// ends on the exit choice or end of input.
func runMenu(in io.Reader, out io.Writer, lib bookshelf.Library) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, "Welcome to the Library System!")

	for {
		fmt.Fprint(out, "\n\n------------------------------\n")
		fmt.Fprintln(out, "What would you like to do?")
		fmt.Fprintln(out, "1. Add Book")
		fmt.Fprintln(out, "2. List Books")
		fmt.Fprintln(out, "3. Check Out Book")
		fmt.Fprintln(out, "4. Check In Book")
		fmt.Fprintln(out, "5. Delete Book")
		fmt.Fprintln(out, "6. Exit")
		fmt.Fprint(out, "\nChoice: ")

		line, ok := readLine(scanner)
		if !ok {
			return nil
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(out, "\nInvalid input. Please enter a number between 1 and 6.")
			continue
		}

		switch choice {
		case 1:
			menuAdd(scanner, out, lib)
		case 2:
			menuList(out, lib)
		case 3:
			menuList(out, lib)
			menuSetStatus(scanner, out, lib, true)
		case 4:
			menuList(out, lib)
			menuSetStatus(scanner, out, lib, false)
		case 5:
			menuList(out, lib)
			menuDelete(scanner, out, lib)
		case 6:
			fmt.Fprintln(out, "\nExiting program. Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "\nInvalid choice. Please enter a number between 1 and 6.")
		}
	}
}

func menuAdd(scanner *bufio.Scanner, out io.Writer, lib bookshelf.Library) {
	fmt.Fprint(out, "\nEnter title: ")
	title, ok := readLine(scanner)
	if !ok {
		return
	}
	fmt.Fprint(out, "Enter author: ")
	author, ok := readLine(scanner)
	if !ok {
		return
	}

	book, err := lib.Add(title, author)
	if err != nil {
		fmt.Fprintf(out, "\nError: %v\n", err)
		return
	}
	fmt.Fprintf(out, "\nAdded %q by %s with ID %d.\n", book.Title, book.Author, book.ID)
}

func menuList(out io.Writer, lib bookshelf.Library) {
	list := lib.Books()
	if len(list) == 0 {
		fmt.Fprintln(out, "\nNo books in the library yet.")
		return
	}

	fmt.Fprintln(out, "\nBooks in the library:")
	for _, book := range list {
		printBook(out, book)
	}
}

func menuSetStatus(scanner *bufio.Scanner, out io.Writer, lib bookshelf.Library, checkOut bool) {
	verb := "check in"
	if checkOut {
		verb = "check out"
	}
	fmt.Fprintf(out, "\nEnter the ID of the book to %s: ", verb)

	id, ok := readID(scanner, out)
	if !ok {
		return
	}

	found := false
	if checkOut {
		found = lib.CheckOut(id)
	} else {
		found = lib.CheckIn(id)
	}

	if !found {
		fmt.Fprintf(out, "\nError: Book with ID %d not found.\n", id)
		return
	}

	status := "Available"
	if checkOut {
		status = "Checked Out"
	}
	fmt.Fprintf(out, "\nUpdated book with ID %d to %s.\n", id, status)
}

func menuDelete(scanner *bufio.Scanner, out io.Writer, lib bookshelf.Library) {
	fmt.Fprint(out, "\nEnter the ID of the book to delete: ")
	id, ok := readID(scanner, out)
	if !ok {
		return
	}

	fmt.Fprintf(out, "Are you sure you want to delete book %d? (y/N): ", id)
	answer, ok := readLine(scanner)
	if !ok {
		return
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		fmt.Fprintln(out, "\nDelete cancelled.")
		return
	}

	if !lib.Remove(id) {
		fmt.Fprintf(out, "\nError: Book with ID %d not found, cannot delete.\n", id)
		return
	}
	fmt.Fprintf(out, "\nDeleted book with ID %d from the library.\n", id)
}

func printBook(out io.Writer, book books.Book) {
	fmt.Fprintf(out, "Book ID: %d | Title: %s | Author: %s | Status: %s\n",
		book.ID, book.Title, book.Author, book.Status())
}

// readLine reads the next line of input. The second result is false at
// end of input.
func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}

// readID reads and parses a book id, reporting invalid input to out.
func readID(scanner *bufio.Scanner, out io.Writer) (int, bool) {
	line, ok := readLine(scanner)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(out, "Invalid ID.")
		return 0, false
	}
	return id, true
}

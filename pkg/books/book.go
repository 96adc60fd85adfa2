// Package books defines the book record type and the one-line text codec
// used by the catalog's flat-file persistence.
package books

// Book is a single catalog entry. ID is assigned by the store and is
// immutable after creation; CheckedOut is the only mutable field.
type Book struct {
	ID         int
	Title      string
	Author     string
	CheckedOut bool
}

// CheckOut marks the book as checked out. Idempotent.
func (b *Book) CheckOut() {
	b.CheckedOut = true
}

// CheckIn marks the book as available. Idempotent.
func (b *Book) CheckIn() {
	b.CheckedOut = false
}

// Status returns the human-readable availability of the book.
func (b *Book) Status() string {
	if b.CheckedOut {
		return "Checked Out"
	}
	return "Available"
}

// Seed is a (title, author) pair used to populate an empty catalog.
type Seed struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

package book

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no book has the requested ISBN.
	ErrNotFound = errors.New("book not found")
	// ErrConflict is returned when a book with the same ISBN already exists.
	ErrConflict = errors.New("book already exists")
)

// Fields holds every book attribute that can be replaced by an update.
type Fields struct {
	AmazonURL string `json:"amazon_url"`
	Author    string `json:"author"`
	Language  string `json:"language"`
	Pages     int    `json:"pages"`
	Publisher string `json:"publisher"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
}

// Book represents a book entity. ISBN is the primary key and never changes
// after creation.
type Book struct {
	ISBN string `json:"isbn"`
	Fields
}

// ValidationError reports every problem found in a request payload, in
// schema field order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid book payload: %s", strings.Join(e.Messages, "; "))
}

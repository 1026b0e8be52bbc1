package ports

import "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/models"

// ExampleStore is the bounded append-only log of past generation
// examples. The read-modify-write in Append is atomic within a single
// run only; concurrent runs may lose entries.
type ExampleStore interface {
	// Load returns all stored examples, oldest first. A missing file is
	// an empty log, not an error.
	Load() ([]models.GeneratedExample, error)

	// Append adds an example, evicting the oldest entries beyond the
	// store's capacity, and rewrites the log wholesale.
	Append(example models.GeneratedExample) error
}

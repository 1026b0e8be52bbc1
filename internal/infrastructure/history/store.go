package history

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/models"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/ports"
)

// MaxEntries is the capacity of the example log; the oldest entries are
// evicted first.
const MaxEntries = 50

var _ ports.ExampleStore = (*Store)(nil)

// Store keeps past generation examples in a single JSON array file.
// Each Append is a wholesale read-modify-write; that is atomic within
// one run but NOT safe against concurrent runs, which may lose entries.
type Store struct {
	path       string
	maxEntries int
}

func NewStore(path string) *Store {
	return &Store{
		path:       path,
		maxEntries: MaxEntries,
	}
}

// Load returns the stored examples, oldest first. A missing file means
// an empty log.
func (s *Store) Load() ([]models.GeneratedExample, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.GeneratedExample{}, nil
		}
		return nil, fmt.Errorf("error reading example history: %w", err)
	}

	var examples []models.GeneratedExample
	if err := json.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("error decoding example history: %w", err)
	}

	return examples, nil
}

// Append adds an example and rewrites the file, dropping the oldest
// entries once the log exceeds its capacity.
func (s *Store) Append(example models.GeneratedExample) error {
	examples, err := s.Load()
	if err != nil {
		slog.Warn("example history unreadable, starting a fresh log",
			"path", s.path,
			"error", err)
		examples = []models.GeneratedExample{}
	}

	examples = append(examples, example)
	if len(examples) > s.maxEntries {
		examples = examples[len(examples)-s.maxEntries:]
	}

	data, err := json.MarshalIndent(examples, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing example history: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating history directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("error saving example history: %w", err)
	}

	slog.Debug("example saved",
		"path", s.path,
		"total_examples", len(examples))

	return nil
}

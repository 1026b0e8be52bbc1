package ai

import (
	"context"
	"strings"
	"time"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/models"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/ports"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/logger"
)

// maxRecordedInputChars bounds how much of the commit summary is kept
// per history entry.
const maxRecordedInputChars = 1000

var _ ports.PostGenerator = (*HistoryRecordingGenerator)(nil)

// HistoryRecordingGenerator decorates a post generator with the example
// log: every successful generation is appended to the store. Recording
// is advisory, its failures never fail the generation.
type HistoryRecordingGenerator struct {
	inner ports.PostGenerator
	store ports.ExampleStore
}

// NewHistoryRecordingGenerator wraps inner so its outputs land in store.
func NewHistoryRecordingGenerator(inner ports.PostGenerator, store ports.ExampleStore) *HistoryRecordingGenerator {
	return &HistoryRecordingGenerator{
		inner: inner,
		store: store,
	}
}

// GeneratePost implements ports.PostGenerator.
func (g *HistoryRecordingGenerator) GeneratePost(ctx context.Context, commitSummary string) (string, error) {
	if examples, err := g.store.Load(); err == nil && len(examples) > 0 {
		logger.Debug(ctx, "loaded generation history", "examples", len(examples))
	}

	post, err := g.inner.GeneratePost(ctx, commitSummary)
	if err != nil {
		return "", err
	}

	g.record(ctx, commitSummary, post)
	return post, nil
}

func (g *HistoryRecordingGenerator) record(ctx context.Context, commitSummary, post string) {
	input := commitSummary
	if len(input) > maxRecordedInputChars {
		input = input[:maxRecordedInputChars]
	}

	now := time.Now().UTC()
	example := models.GeneratedExample{
		Timestamp:     now,
		CommitSummary: input,
		GeneratedPost: post,
		Metrics: models.ExampleMetrics{
			InputLength:  len(commitSummary),
			OutputLength: len(post),
			WordCount:    len(strings.Fields(post)),
			Timestamp:    now,
		},
	}

	if err := g.store.Append(example); err != nil {
		logger.Warn(ctx, "failed to record generation example", "error", err)
	}
}

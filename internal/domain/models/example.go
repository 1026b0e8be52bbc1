package models

import "time"

type (
	// ExampleMetrics records measurements about one generation call.
	ExampleMetrics struct {
		InputLength  int       `json:"input_length"`
		OutputLength int       `json:"output_length"`
		WordCount    int       `json:"word_count"`
		Timestamp    time.Time `json:"timestamp"`
	}

	// GeneratedExample is one historical input/output pair kept for
	// future prompt tuning. The commit summary is truncated before
	// storage to bound file size.
	GeneratedExample struct {
		Timestamp     time.Time      `json:"timestamp"`
		CommitSummary string         `json:"commits_summary"`
		GeneratedPost string         `json:"generated_post"`
		Metrics       ExampleMetrics `json:"metrics"`
	}
)

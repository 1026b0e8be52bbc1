package ports

import "context"

// PostGenerator turns a commit summary into social-media post text.
type PostGenerator interface {
	// GeneratePost sends the commit summary to the language-model
	// backend and returns the generated post text.
	GeneratePost(ctx context.Context, commitSummary string) (string, error)
}

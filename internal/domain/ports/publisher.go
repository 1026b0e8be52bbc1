package ports

import (
	"context"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/models"
)

// Publisher submits a post to the social platform. Media upload
// failures inside Publish degrade to a text-only post; only the final
// submission itself can fail the call.
type Publisher interface {
	// ResolveAuthor returns the URN-like identifier of the posting
	// identity, from configuration or a profile/token lookup.
	ResolveAuthor(ctx context.Context) (string, error)

	// Publish uploads the post's image if present (best effort) and
	// submits the post with public visibility.
	Publish(ctx context.Context, post models.Post) (models.PublishReceipt, error)
}

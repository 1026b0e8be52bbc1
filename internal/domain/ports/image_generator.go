package ports

import (
	"context"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/models"
)

// ImageGenerator produces an optional image to accompany a post. The
// stage is best-effort: every backend failure is reported as a degraded
// result, never as an error the caller must abort on.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, postText string) models.ImageResult
}

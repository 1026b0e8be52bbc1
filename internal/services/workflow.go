package services

import (
	"context"
	"time"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/models"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/ports"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/logger"
)

// lookbackWindow is how far back the daily run reaches for commits.
const lookbackWindow = 24 * time.Hour

type (
	// WorkflowOptions tune a single run.
	WorkflowOptions struct {
		// DryRun generates the post but skips image generation and
		// publishing.
		DryRun bool
		// SkipImage posts text-only without calling the image backend.
		SkipImage bool
	}

	// RunReport summarizes what a run did.
	RunReport struct {
		Duration      time.Duration
		CommitCount   int
		Post          string
		ImageIncluded bool
		ImageReason   string
		Published     bool
		PostID        string
	}

	// Workflow runs the daily pipeline: fetch commits, format them,
	// generate the post, illustrate it, publish it.
	Workflow struct {
		fetcher   ports.CommitFetcher
		generator ports.PostGenerator
		images    ports.ImageGenerator
		publisher ports.Publisher
		now       func() time.Time
	}
)

// NewWorkflow wires the pipeline stages together.
func NewWorkflow(fetcher ports.CommitFetcher, generator ports.PostGenerator, images ports.ImageGenerator, publisher ports.Publisher) *Workflow {
	return &Workflow{
		fetcher:   fetcher,
		generator: generator,
		images:    images,
		publisher: publisher,
		now:       time.Now,
	}
}

// Run executes the pipeline once. A day without commits is a normal
// outcome, not an error: the run reports zero commits and publishes
// nothing.
func (w *Workflow) Run(ctx context.Context, opts WorkflowOptions) (RunReport, error) {
	started := w.now()
	report := RunReport{}

	stepCtx := logger.With(ctx, "step", "fetch")
	since := started.Add(-lookbackWindow)
	logger.Info(stepCtx, "fetching commits", "since", since.UTC().Format(time.RFC3339))

	commits, err := w.fetcher.FetchCommitsSince(ctx, since)
	if err != nil {
		return report, err
	}
	report.CommitCount = len(commits)
	logger.Info(stepCtx, "fetch finished", "commits", len(commits), "duration", time.Since(started))

	if len(commits) == 0 {
		logger.Info(ctx, "no commits in the window, nothing to post")
		report.Duration = time.Since(started)
		return report, nil
	}

	stepCtx = logger.With(ctx, "step", "format")
	summary := FormatCommits(commits)
	logger.Debug(stepCtx, "summary built", "size", len(summary))

	stepCtx = logger.With(ctx, "step", "generate")
	genStarted := w.now()
	post, err := w.generator.GeneratePost(ctx, summary)
	if err != nil {
		return report, err
	}
	report.Post = post
	logger.Info(stepCtx, "post generated", "post_length", len(post), "duration", time.Since(genStarted))

	if opts.DryRun {
		logger.Info(ctx, "dry run, skipping image and publish")
		report.Duration = time.Since(started)
		return report, nil
	}

	content := models.Post{Text: post}
	if opts.SkipImage {
		logger.Info(ctx, "image generation disabled for this run")
	} else {
		stepCtx = logger.With(ctx, "step", "image")
		imgStarted := w.now()
		result := w.images.GenerateImage(ctx, post)
		switch {
		case result.HasImage():
			content.Image = result.Payload
			report.ImageIncluded = true
			logger.Info(stepCtx, "image generated", "duration", time.Since(imgStarted))
		default:
			report.ImageReason = result.Reason
			if result.Err != nil {
				logger.Warn(stepCtx, "image stage failed, posting without image", "error", result.Err)
			} else {
				logger.Info(stepCtx, "posting without image", "reason", result.Reason)
			}
		}
	}

	stepCtx = logger.With(ctx, "step", "publish")
	pubStarted := w.now()
	receipt, err := w.publisher.Publish(ctx, content)
	if err != nil {
		return report, err
	}
	report.Published = true
	report.PostID = receipt.ID
	report.ImageIncluded = receipt.MediaCategory == "IMAGE"
	logger.Info(stepCtx, "post published",
		"id", receipt.ID,
		"media", receipt.MediaCategory,
		"duration", time.Since(pubStarted))

	report.Duration = time.Since(started)
	logger.Info(ctx, "run finished", "duration", report.Duration, "commits", report.CommitCount)
	return report, nil
}

package run

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/i18n"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/ai"
	aigemini "github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/ai/gemini"
	aigroq "github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/ai/groq"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/ai/imagen"
	airegistry "github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/ai/registry"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/history"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/httpclient"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/social/linkedin"
	vcsgithub "github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/vcs/github"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/logger"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/services"
	"github.com/urfave/cli/v3"
)

type Command struct{}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: t.GetMessage("run_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: t.GetMessage("run_flag_dry_run", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "no-image",
				Usage: t.GetMessage("run_flag_no_image", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   t.GetMessage("run_flag_quiet", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: t.GetMessage("run_flag_debug", 0, nil),
			},
			&cli.BoolFlag{
				Name:   "verbose",
				Usage:  t.GetMessage("run_flag_verbose", 0, nil),
				Hidden: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger.Initialize(cmd.Bool("debug"), cmd.Bool("quiet"))

			dryRun := cmd.Bool("dry-run")
			if err := cfg.ValidateForRun(dryRun); err != nil {
				return err
			}

			workflow, err := buildWorkflow(ctx, cfg)
			if err != nil {
				return err
			}

			report, err := workflow.Run(ctx, services.WorkflowOptions{
				DryRun:    dryRun,
				SkipImage: cmd.Bool("no-image"),
			})
			if err != nil {
				return err
			}

			if report.CommitCount == 0 {
				fmt.Println(t.GetMessage("run_no_commits", 0, nil))
				return nil
			}

			if dryRun {
				color.New(color.FgCyan, color.Bold).Println(t.GetMessage("run_dry_run_header", 0, nil))
				fmt.Println()
				fmt.Println(report.Post)
				return nil
			}

			fmt.Println(t.GetMessage("run_published", 0, map[string]interface{}{
				"ID":    report.PostID,
				"Media": mediaLabel(report.ImageIncluded),
			}))
			return nil
		},
	}
}

// buildWorkflow assembles the pipeline from configuration.
func buildWorkflow(ctx context.Context, cfg *config.Config) (*services.Workflow, error) {
	fetcher := vcsgithub.NewFetcher(cfg)

	providers := airegistry.NewProviderRegistry()
	if err := providers.Register(config.ProviderGroq, aigroq.NewFactory()); err != nil {
		return nil, err
	}
	if err := providers.Register(config.ProviderGemini, aigemini.NewFactory()); err != nil {
		return nil, err
	}

	generator, err := providers.CreateGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	recorded := ai.NewHistoryRecordingGenerator(generator, history.NewStore(cfg.HistoryPath))

	client := httpclient.NewDefaultHTTPClient()
	images := imagen.NewGenerator(cfg, client)
	publisher := linkedin.NewPublisher(cfg, client)

	return services.NewWorkflow(fetcher, recorded, images, publisher), nil
}

func mediaLabel(imageIncluded bool) string {
	if imageIncluded {
		return "IMAGE"
	}
	return "NONE"
}

package identity

import (
	"context"
	"fmt"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	domainerrors "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/errors"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/i18n"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/httpclient"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/social/linkedin"
	"github.com/urfave/cli/v3"
)

type Command struct{}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "identity",
		Usage: t.GetMessage("identity_command_usage", 0, nil),
		Action: func(ctx context.Context, _ *cli.Command) error {
			if cfg.LinkedIn.AccessToken == "" {
				return domainerrors.NewConfigError("linkedin.access_token", "LinkedIn access token is required (set LINKEDIN_ACCESS_TOKEN)", nil)
			}

			publisher := linkedin.NewPublisher(cfg, httpclient.NewDefaultHTTPClient())
			urn, err := publisher.ResolveAuthor(ctx)
			if err != nil {
				return err
			}

			fmt.Println(t.GetMessage("identity_resolved", 0, map[string]interface{}{
				"URN": urn,
			}))
			return nil
		},
	}
}

package auth

import (
	"context"
	"fmt"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/i18n"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/social/linkedin"
	"github.com/urfave/cli/v3"
)

// defaultRedirectURL must match the redirect registered on the LinkedIn
// developer application.
const defaultRedirectURL = "http://localhost:8080/callback"

type Command struct{}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: t.GetMessage("auth_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "code",
				Usage: t.GetMessage("auth_flag_code", 0, nil),
			},
			&cli.StringFlag{
				Name:  "redirect-url",
				Value: defaultRedirectURL,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			redirectURL := cmd.String("redirect-url")
			code := cmd.String("code")

			if code == "" {
				url, err := linkedin.BuildAuthURL(cfg, redirectURL)
				if err != nil {
					return err
				}
				fmt.Println(t.GetMessage("auth_visit_url", 0, nil))
				fmt.Println()
				fmt.Println(url)
				return nil
			}

			token, err := linkedin.ExchangeCode(ctx, cfg, redirectURL, code)
			if err != nil {
				return err
			}

			cfg.LinkedIn.AccessToken = token.AccessToken
			cfg.LinkedIn.IDToken = token.IDToken
			if err := config.SaveConfig(cfg); err != nil {
				return fmt.Errorf("saving tokens: %w", err)
			}

			fmt.Println(t.GetMessage("auth_token_obtained", 0, map[string]interface{}{
				"Token": token.AccessToken,
			}))
			return nil
		},
	}
}
